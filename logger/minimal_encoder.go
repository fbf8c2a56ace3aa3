package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

// Color palette: everforest dark (natural forest greens). namematch carries
// only the one theme the teacher shipped by default; gruvbox never got a
// second caller so it isn't worth the branch.
const (
	colorReset = "\x1b[0m"
	colorBold  = "\x1b[1m"

	colorTimeFg   = "\x1b[38;5;107m" // mid forest green
	colorCompFg   = "\x1b[38;5;208m" // autumn orange
	colorMsgFg    = "\x1b[38;5;223m" // soft beige
	colorMatchFg  = "\x1b[38;5;108m" // bright leaf green
	colorIDFg     = "\x1b[38;5;109m" // blue-green
	colorNumberFg = "\x1b[38;5;108m"
	colorWarnFg   = "\x1b[38;5;179m"
	colorWarnBg   = "\x1b[48;5;58m"
	colorErrFg    = "\x1b[38;5;167m"
	colorErrBg    = "\x1b[48;5;52m"
)

// currentTheme is a no-op knob kept for config compatibility: namematch
// only ships the everforest palette today, but SetTheme accepting "everforest"
// without error lets internal/config bind NAMEMATCH_LOG_THEME unconditionally.
var currentTheme = "everforest"

// SetTheme configures the color scheme for log output.
func SetTheme(theme string) {
	if theme == "everforest" {
		currentTheme = theme
	}
}

// minimalEncoder implements a calm, compact console encoder.
// Format: "13:04:35  comparator  pair compared  a1b2c3 match=true attempt=2"
type minimalEncoder struct {
	zapcore.Encoder
	buf *buffer.Buffer
}

func newMinimalEncoder() *minimalEncoder {
	baseEncoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	return &minimalEncoder{
		Encoder: baseEncoder,
		buf:     buffer.NewPool().Get(),
	}
}

func (enc *minimalEncoder) Clone() zapcore.Encoder {
	return &minimalEncoder{
		Encoder: enc.Encoder.Clone(),
		buf:     buffer.NewPool().Get(),
	}
}

func (enc *minimalEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	final := buffer.NewPool().Get()

	final.AppendString(colorTimeFg)
	final.AppendString(ent.Time.Format("15:04:05"))
	final.AppendString(colorReset)

	if ent.Level != zapcore.InfoLevel {
		final.AppendString("  ")
		final.AppendString(levelColorString(ent.Level))
	}

	if ent.LoggerName != "" {
		final.AppendString("  ")
		final.AppendString(colorCompFg)
		final.AppendString(ent.LoggerName)
		final.AppendString(colorReset)
	}

	final.AppendString("  ")
	final.AppendString(colorMsgFg)
	final.AppendString(ent.Message)
	final.AppendString(colorReset)

	if len(fields) > 0 {
		if values := extractFieldValues(fields); values != "" {
			final.AppendString("  ")
			final.AppendString(values)
		}
	}

	final.AppendString("\n")
	return final, nil
}

func levelColorString(level zapcore.Level) string {
	switch level {
	case zapcore.WarnLevel:
		return colorBold + colorWarnBg + colorWarnFg + "WARN" + colorReset
	case zapcore.ErrorLevel:
		return colorBold + colorErrBg + colorErrFg + "ERROR" + colorReset
	case zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		return colorBold + colorErrBg + colorErrFg + level.CapitalString() + colorReset
	default:
		return ""
	}
}

func getFieldValue(field zapcore.Field) string {
	switch field.Type {
	case zapcore.StringType:
		return field.String
	case zapcore.BoolType:
		if field.Integer == 1 {
			return "true"
		}
		return "false"
	case zapcore.Int64Type, zapcore.Int32Type, zapcore.Int16Type, zapcore.Int8Type,
		zapcore.Uint64Type, zapcore.Uint32Type, zapcore.Uint16Type, zapcore.Uint8Type:
		return fmt.Sprintf("%d", field.Integer)
	}
	if field.Interface != nil {
		return fmt.Sprintf("%v", field.Interface)
	}
	return ""
}

// extractFieldValues renders the fields namematch actually logs:
// trace_id, match, attempt, too_short/too_generic, duration_ms.
func extractFieldValues(fields []zapcore.Field) string {
	var values []string

	for _, field := range fields {
		switch field.Key {
		case FieldTraceID:
			if val := getFieldValue(field); val != "" {
				values = append(values, colorIDFg+val+colorReset)
			}
		case FieldMatch:
			values = append(values, colorMatchFg+"match="+getFieldValue(field)+colorReset)
		case FieldAttempt:
			if val := getFieldValue(field); val != "" {
				values = append(values, "attempt="+val)
			}
		case FieldTooShort, FieldTooGeneric:
			if val := getFieldValue(field); val == "true" {
				values = append(values, field.Key)
			}
		case FieldDurationMS:
			if val := getFieldValue(field); val != "" {
				values = append(values, colorNumberFg+val+colorReset+"ms")
			}
		}
	}

	return strings.Join(values, " ")
}
