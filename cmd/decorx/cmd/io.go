package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/decorx/foundation/core/document"
	dxerror "github.com/msto63/decorx/foundation/core/error"
	dxlog "github.com/msto63/decorx/foundation/core/log"
	"github.com/msto63/decorx/foundation/core/object"
)

// stdinPath names standard input as a document argument
const stdinPath = "-"

// readDocument loads one document argument. Formats are detected from the
// file extension, then from the content.
func readDocument(cmd *cobra.Command, path string) (*object.Object, error) {
	var (
		o   *object.Object
		err error
	)
	if path == stdinPath {
		o, err = document.Read(cmd.InOrStdin(), document.FormatAuto)
	} else {
		o, err = document.ReadFile(path, document.FormatAuto)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug("document read", dxlog.Fields{"path": path, "keys": o.Len()})
	return o, nil
}

// readDocuments loads every path in order. At most one may be stdin.
func readDocuments(cmd *cobra.Command, paths []string) ([]*object.Object, error) {
	stdinSeen := false
	docs := make([]*object.Object, 0, len(paths))
	for _, p := range paths {
		if p == stdinPath {
			if stdinSeen {
				return nil, dxerror.New("stdin can only be read once").
					WithCode(dxerror.CodeInvalidInput).
					WithOperation("cmd.readDocuments")
			}
			stdinSeen = true
		}

		o, err := readDocument(cmd, p)
		if err != nil {
			return nil, err
		}
		docs = append(docs, o)
	}
	return docs, nil
}

// writeDocument encodes o in the configured output format to stdout
func writeDocument(cmd *cobra.Command, o *object.Object) error {
	data, err := document.Encode(o, outFormat, outIndent)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

// parseValue reads a command line value as a JSON literal (number, boolean,
// null, string, array or object) and falls back to the raw string.
func parseValue(raw string) any {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return raw
	}

	if strings.HasPrefix(trimmed, "{") {
		o := object.New()
		if err := json.Unmarshal([]byte(trimmed), o); err == nil {
			return o
		}
		return raw
	}

	var v any
	if err := json.Unmarshal([]byte(trimmed), &v); err != nil {
		return raw
	}
	return v
}

// parseAssignment splits key=value
func parseAssignment(arg string) (string, any, error) {
	key, raw, ok := strings.Cut(arg, "=")
	if !ok || strings.TrimSpace(key) == "" {
		return "", nil, dxerror.New(fmt.Sprintf("expected key=value, got %q", arg)).
			WithCode(dxerror.CodeInvalidInput).
			WithOperation("cmd.parseAssignment").
			WithDetail("argument", arg)
	}
	return strings.TrimSpace(key), parseValue(raw), nil
}

// formatValue renders a value compactly for tables and verdicts
func formatValue(v any) string {
	if o, ok := v.(*object.Object); ok {
		return o.String()
	}
	if object.KindOf(v) == object.KindFunction {
		return "<function>"
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
