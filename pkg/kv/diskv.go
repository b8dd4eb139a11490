package kv

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"
)

// Disk is a Store backed by diskv under a single base path. Keys map to flat
// files; values are written exactly as serialized by Set.
type Disk struct {
	d        *diskv.Diskv
	basePath string
}

// Open creates a Disk store rooted at the config's base path.
func Open(cfg Config) (*Disk, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &Disk{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return nil },
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

// BasePath reports the directory backing this store.
func (s *Disk) BasePath() string {
	return s.basePath
}

func (s *Disk) Set(key string, value any) bool {
	data, err := encode(value)
	if err != nil {
		fmt.Fprintf(os.Stderr, "kv: encode %s: %v\n", key, err)
		return false
	}
	if err := s.d.Write(key, data); err != nil {
		fmt.Fprintf(os.Stderr, "kv: write %s: %v\n", key, err)
		return false
	}
	return true
}

func (s *Disk) Get(key string) any {
	data, ok := s.Raw(key)
	if !ok {
		return nil
	}
	return decode(data)
}

func (s *Disk) Raw(key string) ([]byte, bool) {
	if !s.d.Has(key) {
		return nil, false
	}
	data, err := s.d.Read(key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "kv: read %s: %v\n", key, err)
		return nil, false
	}
	if len(data) == 0 {
		return nil, false
	}
	return data, true
}

func (s *Disk) Remove(key string) bool {
	if err := s.d.Erase(key); err != nil {
		if os.IsNotExist(err) {
			return true
		}
		fmt.Fprintf(os.Stderr, "kv: erase %s: %v\n", key, err)
		return false
	}
	return true
}

// encode renders a value the way it should live on disk: strings and byte
// slices verbatim, everything else as JSON.
func encode(value any) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return nil, fmt.Errorf("nil value")
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	case bool, int, int32, int64, float32, float64:
		return []byte(fmt.Sprintf("%v", v)), nil
	default:
		return json.Marshal(v)
	}
}

// decode attempts a JSON parse and falls back to the raw string. Plain
// strings and JSON blobs share the same interface this way.
func decode(data []byte) any {
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return string(data)
	}
	return out
}
