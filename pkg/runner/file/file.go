// Package file provides the runner that prints a day's storage path.
package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"tableflip.dev/punch/pkg/store"
)

// File prints where the day's ledger lives on disk.
type File struct {
	Day         string
	Out         io.Writer
	Persistence store.Persistence
}

func (n *File) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not resolve file, no persistence")
	}
	out := n.Out
	if out == nil {
		out = os.Stdout
	}
	_, err := fmt.Fprintln(out, n.Persistence.Path(n.Day))
	return err
}
