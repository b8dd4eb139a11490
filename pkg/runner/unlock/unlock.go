// Package unlock prompts for the local password until the credential gate
// opens. Commands that read or change entries run it before touching the
// store.
package unlock

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"deardiary.dev/diary/pkg/credential"
)

// warnAfter is advisory only. Attempts are never limited; the prompt just
// starts nagging.
const warnAfter = 5

type Unlock struct {
	Gate *credential.Gate

	// Password short-circuits the prompt, for non-interactive use.
	Password string

	In io.Reader
}

func (n *Unlock) Do(ctx context.Context) error {
	if n.Gate == nil {
		return errors.New("can not unlock, no credential gate")
	}
	if !n.Gate.Has() || n.Gate.Authenticated() {
		return nil
	}

	if n.Password != "" {
		if n.Gate.Verify(n.Password) {
			return nil
		}
		return errors.New("incorrect password")
	}

	in := n.In
	if in == nil {
		in = os.Stdin
	}
	reader := bufio.NewReader(in)
	warn := color.New(color.FgHiYellow, color.Italic)

	attempts := 0
	for {
		fmt.Print("Password: ")
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("unlock aborted: %w", err)
		}
		if n.Gate.Verify(strings.TrimRight(line, "\r\n")) {
			return nil
		}
		attempts++
		fmt.Println("Incorrect password.")
		if attempts >= warnAfter {
			_, _ = warn.Printf("%d failed attempts\n", attempts)
		}
		if err != nil {
			return errors.New("unlock aborted")
		}
	}
}
