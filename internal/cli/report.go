package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/fspath/errors"
)

// ReportError writes err to the error stream of cmd, as text or as a JSON
// object depending on --error-format.
func ReportError(cmd *cobra.Command, err error) {
	w := cmd.ErrOrStderr()

	format, _ := cmd.PersistentFlags().GetString("error-format")
	if format == "json" {
		var payload any = errors.ToJSON(err)
		if perr, ok := err.(errors.PlatformError); ok {
			payload = perr
		}
		if encErr := json.NewEncoder(w).Encode(payload); encErr == nil {
			return
		}
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}
