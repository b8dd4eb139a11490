package commands

import (
	"context"

	"deardiary.dev/diary/pkg/credential"
	"deardiary.dev/diary/pkg/diary"
	"deardiary.dev/diary/pkg/kv"
	"deardiary.dev/diary/pkg/runner/unlock"
)

// stores bundles everything a command needs from the local database.
type stores struct {
	cfg     kv.Config
	disk    *kv.Disk
	entries *diary.Store
	gate    *credential.Gate
}

func openStores() (*stores, error) {
	cfg, err := kv.LoadConfig()
	if err != nil {
		return nil, err
	}
	d, err := kv.Open(cfg)
	if err != nil {
		return nil, err
	}
	return &stores{
		cfg:     cfg,
		disk:    d,
		entries: diary.NewStore(d),
		gate:    credential.NewGate(d, kv.NewSession()),
	}, nil
}

// mustUnlock gates entry access: when a password is set, the command only
// proceeds after a successful verify.
func (s *stores) mustUnlock(ctx context.Context, password string) error {
	u := unlock.Unlock{Gate: s.gate, Password: password}
	return u.Do(ctx)
}
