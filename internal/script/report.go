package script

import (
	"fmt"
	"io"
	"strconv"

	"github.com/bytedance/sonic"
)

// FormatValue renders a result value the way the console driver prints
// numbers: six significant digits, shortest form.
func FormatValue(v interface{}) string {
	switch n := v.(type) {
	case float64:
		return strconv.FormatFloat(n, 'g', 6, 64)
	case float32:
		return strconv.FormatFloat(float64(n), 'g', 6, 32)
	case nil:
		return ""
	default:
		return fmt.Sprint(n)
	}
}

// WriteText prints one "label: value" line per successful call to out and
// one "Error: description" line per failed call to errOut.
func WriteText(out, errOut io.Writer, report *Report) error {
	for _, o := range report.Outcomes {
		if !o.OK() {
			if _, err := fmt.Fprintf(errOut, "Error: %s\n", o.Message()); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(out, "%s: %s\n", o.Label, FormatValue(o.Result.Data["result"])); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON encodes the report as indented JSON
func WriteJSON(w io.Writer, report *Report) error {
	data, err := sonic.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
