package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	simerrors "github.com/jrsteele09/go-sim-client/internal/errors"
)

func writeJSON(w io.Writer, raw json.RawMessage) error {
	if len(raw) == 0 {
		_, err := fmt.Fprintln(w, "null")
		return err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err := buf.WriteTo(w)
	return err
}

// parseData reads a --data value: inline JSON, or @path to read a file. Empty means no body.
func parseData(data string) (any, error) {
	if data == "" {
		return nil, nil
	}
	raw := []byte(data)
	if path, ok := strings.CutPrefix(data, "@"); ok {
		var err error
		if raw, err = os.ReadFile(path); err != nil {
			return nil, err
		}
	}
	if !json.Valid(raw) {
		return nil, simerrors.Wrapf(simerrors.ErrInvalidArgument, "--data is not valid JSON")
	}
	return json.RawMessage(raw), nil
}
