// Package lock implements the local password verbs.
package lock

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"deardiary.dev/diary/pkg/credential"
	"deardiary.dev/diary/pkg/diary"
)

type Set struct {
	Password string

	Gate *credential.Gate

	In io.Reader
}

func (n *Set) Do(ctx context.Context) error {
	if n.Gate == nil {
		return errors.New("can not set password, no credential gate")
	}

	password := n.Password
	if password == "" {
		in := n.In
		if in == nil {
			in = os.Stdin
		}
		fmt.Print("New password: ")
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && line == "" {
			return errors.New("set aborted")
		}
		password = strings.TrimRight(line, "\r\n")
	}

	if err := n.Gate.Set(password); err != nil {
		return err
	}
	fmt.Println("Password set. Your diary is now locked.")
	return nil
}

type Verify struct {
	Password string

	Gate *credential.Gate
}

func (n *Verify) Do(ctx context.Context) error {
	if n.Gate == nil {
		return errors.New("can not verify, no credential gate")
	}
	if !n.Gate.Has() {
		fmt.Println("No password is set.")
		return nil
	}
	if !n.Gate.Verify(n.Password) {
		return errors.New("incorrect password")
	}
	fmt.Println("Unlocked.")
	return nil
}

type Clear struct {
	Gate *credential.Gate
}

func (n *Clear) Do(ctx context.Context) error {
	if n.Gate == nil {
		return errors.New("can not clear, no credential gate")
	}
	n.Gate.Clear()
	fmt.Println("Password removed. Your diary is no longer locked.")
	return nil
}

// Reset is the forgot-password escape hatch: it removes the password AND
// every entry, because entries behind a lost password stay unreadable
// otherwise. It refuses to run without an explicit confirmation.
type Reset struct {
	Confirm bool

	Gate    *credential.Gate
	Entries *diary.Store

	In io.Reader
}

func (n *Reset) Do(ctx context.Context) error {
	if n.Gate == nil || n.Entries == nil {
		return errors.New("can not reset, missing credential gate or entry store")
	}

	if !n.Confirm {
		in := n.In
		if in == nil {
			in = os.Stdin
		}
		fmt.Print("This removes your password and deletes every diary entry. Type yes to continue: ")
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && line == "" {
			return errors.New("reset aborted")
		}
		if strings.TrimSpace(line) != "yes" {
			return errors.New("reset aborted")
		}
	}

	n.Gate.Clear()
	if !n.Entries.Wipe() {
		return errors.New("password removed, but the entries could not be deleted")
	}
	fmt.Println("Diary reset: password removed and all entries deleted.")
	return nil
}
