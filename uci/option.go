package uci

import (
	"strconv"
	"strings"
)

// OptionType tags the five UCI option kinds.
type OptionType uint8

const (
	String OptionType = iota
	Check
	Spin
	Combo
	Button
)

func (t OptionType) String() string {
	switch t {
	case String:
		return "string"
	case Check:
		return "check"
	case Spin:
		return "spin"
	case Combo:
		return "combo"
	case Button:
		return "button"
	}
	return "unknown"
}

// OnChange is invoked with the option itself after every accepted assignment.
type OnChange func(*Option)

// Option is one named, typed configuration value. The type is fixed at
// construction; values are stored as text and converted by the typed readers.
type Option struct {
	Type OptionType

	name         string
	defaultValue string
	currentValue string
	min, max     int
	idx          int
	onChange     OnChange
}

func NewString(v string, f OnChange) *Option {
	return &Option{Type: String, defaultValue: v, currentValue: v, onChange: f}
}

func NewCheck(v bool, f OnChange) *Option {
	s := "false"
	if v {
		s = "true"
	}
	return &Option{Type: Check, defaultValue: s, currentValue: s, onChange: f}
}

func NewButton(f OnChange) *Option {
	return &Option{Type: Button, onChange: f}
}

func NewSpin(v float64, min, max int, f OnChange) *Option {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	return &Option{Type: Spin, defaultValue: s, currentValue: s, min: min, max: max, onChange: f}
}

func NewCombo(def, cur string, f OnChange) *Option {
	return &Option{Type: Combo, defaultValue: def, currentValue: cur, onChange: f}
}

// Name returns the display name assigned when the option was added to a map.
func (o *Option) Name() string { return o.name }

// Default returns the textual default value.
func (o *Option) Default() string { return o.defaultValue }

// Min and Max are meaningful for spin options only.
func (o *Option) Min() int { return o.min }
func (o *Option) Max() int { return o.max }

// Idx returns the insertion sequence number within the owning map.
func (o *Option) Idx() int { return o.idx }

// Int reads a check option as 0/1 or a spin option as its numeric value.
// Calling it on any other type is a programming error.
func (o *Option) Int() int {
	switch o.Type {
	case Check:
		if o.currentValue == "true" {
			return 1
		}
		return 0
	case Spin:
		v, _ := strconv.ParseFloat(o.currentValue, 64)
		return int(v)
	}
	panic("uci: Int called on " + o.Type.String() + " option " + o.name)
}

// Bool reads a check option.
func (o *Option) Bool() bool {
	if o.Type != Check {
		panic("uci: Bool called on " + o.Type.String() + " option " + o.name)
	}
	return o.currentValue == "true"
}

// Str reads a string option.
func (o *Option) Str() string {
	if o.Type != String {
		panic("uci: Str called on " + o.Type.String() + " option " + o.name)
	}
	return o.currentValue
}

// Equals compares a combo option's current choice case-insensitively.
func (o *Option) Equals(s string) bool {
	if o.Type != Combo {
		panic("uci: Equals called on " + o.Type.String() + " option " + o.name)
	}
	return strings.EqualFold(o.currentValue, s)
}

// Set validates v against the option's type and bounds. On rejection the
// stored value is left untouched and no callback fires; the caller can only
// detect rejection by reading the value back. Buttons store nothing and are
// exempt from the emptiness check, so even Set("") fires their callback.
// It is up to the GUI to respect option limits, but the value may also come
// from a console user, so the bounds are checked here anyway.
func (o *Option) Set(v string) *Option {
	if o.Type != Button && v == "" {
		return o
	}
	if o.Type == Check && v != "true" && v != "false" {
		return o
	}
	if o.Type == Spin {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil || n < float64(o.min) || n > float64(o.max) {
			return o
		}
	}

	if o.Type != Button {
		o.currentValue = v
	}
	if o.onChange != nil {
		o.onChange(o)
	}
	return o
}
