package httplog

import (
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

const (
	// DefaultTimeLayout renders timestamps as YYYY/MM/DDThh:mm:ss with a 12-hour clock.
	DefaultTimeLayout = "2006/01/02T03:04:05"

	levelColumns = 8
)

var (
	linePool = buffer.NewPool()

	levelColors = map[Level]color.Attribute{
		ErrorLevel:   color.FgRed,
		WarnLevel:    color.FgYellow,
		InfoLevel:    color.FgGreen,
		VerboseLevel: color.FgCyan,
		DebugLevel:   color.FgBlue,
	}
)

// lineEncoder renders entries as
//
//	[ <level right-aligned to 8 columns> @ <time>] - <label: ><message>
//
// Structured fields, which the plain format has no slot for, are collected
// by the embedded JSON encoder and appended as a single JSON object.
type lineEncoder struct {
	zapcore.Encoder

	timeLayout string
	palette    map[Level]*color.Color
}

var _ zapcore.Encoder = &lineEncoder{}

func newLineEncoder(timeLayout string, colorize bool) *lineEncoder {
	var palette map[Level]*color.Color
	if colorize {
		palette = make(map[Level]*color.Color, len(levelColors))
		for l, attr := range levelColors {
			c := color.New(attr)
			// The sink decides, not the global color.NoColor which only looks at stdout.
			c.EnableColor()
			palette[l] = c
		}
	}

	return &lineEncoder{
		Encoder:    zapcore.NewJSONEncoder(zapcore.EncoderConfig{SkipLineEnding: true}),
		timeLayout: timeLayout,
		palette:    palette,
	}
}

func (e *lineEncoder) Clone() zapcore.Encoder {
	return &lineEncoder{
		Encoder:    e.Encoder.Clone(),
		timeLayout: e.timeLayout,
		palette:    e.palette,
	}
}

func (e *lineEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	// Only the fields are wanted from the JSON encoder, so hand it an empty entry.
	extra, err := e.Encoder.EncodeEntry(zapcore.Entry{}, fields)
	if err != nil {
		return nil, err
	}
	defer extra.Free()

	level := levelFromZap(ent.Level)
	name := level.String()

	line := linePool.Get()
	line.AppendString("[ ")
	if pad := levelColumns - len(name); pad > 0 {
		line.AppendString(strings.Repeat(" ", pad))
	}
	line.AppendString(name)
	line.AppendString(" @ ")
	line.AppendTime(ent.Time, e.timeLayout)
	line.AppendString("] - ")
	if ent.LoggerName != "" {
		line.AppendString(ent.LoggerName)
		line.AppendString(": ")
	}
	line.AppendString(ent.Message)
	if extra.String() != "{}" {
		line.AppendByte(' ')
		_, _ = line.Write(extra.Bytes())
	}
	if ent.Stack != "" {
		line.AppendByte('\n')
		line.AppendString(ent.Stack)
	}

	if c, ok := e.palette[level]; ok {
		colored := c.Sprint(line.String())
		line.Reset()
		line.AppendString(colored)
	}

	line.AppendString(zapcore.DefaultLineEnding)
	return line, nil
}
