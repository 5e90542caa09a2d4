package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/daypack/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// answerValue evaluates an answer expression and converts it to the string
// a solver would print. Numbers, strings and bools are accepted.
func (l *Loader) answerValue(ctx context.Context, expr hcl.Expression) (string, error) {
	logger := ctxlog.FromContext(ctx)

	// gohcl hands a missing attribute over as a zero-width null expression.
	if rng := expr.Range(); rng.Start.Byte == rng.End.Byte {
		return "", fmt.Errorf("value is required")
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return "", diags
	}
	if val.IsNull() || !val.IsKnown() {
		return "", fmt.Errorf("value must not be null")
	}

	converted, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("cannot convert %s to string: %w", val.Type().FriendlyName(), err)
	}
	if !val.Type().Equals(cty.String) {
		logger.Debug("Implicitly converted answer value.", "from", val.Type().FriendlyName())
	}
	return converted.AsString(), nil
}
