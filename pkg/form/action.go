package form

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-palette/pkg/palette"
)

// Outcome reports what a generate action did.
type Outcome struct {
	Message Message
	Result  palette.Result
	Err     error
}

// OK reports whether the palette was generated and written.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Generate reads the primary field and derives the secondary and accent
// colours. On success both fields are written, every preview is refreshed
// and the success message is surfaced. On an invalid primary only the
// failure message is surfaced; no field is touched.
func (f *Form) Generate() Outcome {
	req := palette.Request{Primary: f.primary.Value()}

	result, err := f.generator.GenerateRequest(req)
	if err != nil {
		msg := Message{Level: LevelError, Text: palette.MessageInvalidPrimary}
		f.logger.Info("palette generation rejected",
			zap.String("primary", req.Primary),
			zap.Error(err),
		)
		f.notifier.Notify(msg)
		return Outcome{Message: msg, Err: err}
	}

	f.secondary.Input.SetValue(result.Secondary.String())
	f.accent.Input.SetValue(result.Accent.String())
	if binder := f.Binder(); binder != nil {
		binder.Refresh()
	}

	msg := Message{Level: LevelSuccess, Text: palette.MessageSuccess}
	f.logger.Info("palette generated",
		zap.String("primary", result.Primary.String()),
		zap.String("secondary", result.Secondary.String()),
		zap.String("accent", result.Accent.String()),
	)
	f.notifier.Notify(msg)
	return Outcome{Message: msg, Result: result}
}
