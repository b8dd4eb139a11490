// Package pin implements the hosted PIN verbs. They talk to the remote
// database configured by dsn and user.
package pin

import (
	"context"
	"errors"
	"fmt"

	"deardiary.dev/diary/pkg/credential"
)

type Set struct {
	UserID string
	Pin    string

	Gate *credential.PinGate
}

func (n *Set) Do(ctx context.Context) error {
	if n.Gate == nil {
		return errors.New("can not set pin, no pin gate")
	}
	if n.UserID == "" {
		return errors.New("a user id is required, set user in the config")
	}
	if err := n.Gate.Set(ctx, n.UserID, n.Pin); err != nil {
		return err
	}
	fmt.Println("PIN set.")
	return nil
}

type Verify struct {
	UserID string
	Pin    string

	Gate *credential.PinGate
}

func (n *Verify) Do(ctx context.Context) error {
	if n.Gate == nil {
		return errors.New("can not verify pin, no pin gate")
	}
	if n.UserID == "" {
		return errors.New("a user id is required, set user in the config")
	}
	if err := n.Gate.Verify(ctx, n.UserID, n.Pin); err != nil {
		return err
	}
	fmt.Println("PIN verified.")
	return nil
}

type Remove struct {
	UserID string

	Gate *credential.PinGate
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Gate == nil {
		return errors.New("can not remove pin, no pin gate")
	}
	if n.UserID == "" {
		return errors.New("a user id is required, set user in the config")
	}
	if err := n.Gate.Remove(ctx, n.UserID); err != nil {
		return err
	}
	fmt.Println("PIN removed.")
	return nil
}
