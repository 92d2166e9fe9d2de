package model

import "strings"

// FormulaConfig drives the custom translator for one thing. Formulas are
// expressions in x, e.g. "x * 2.54".
type FormulaConfig struct {
	ToHue     string `json:"to_hue,omitempty" mapstructure:"to_hue"`
	ToAction  string `json:"to_action,omitempty" mapstructure:"to_action"`
	Attribute string `json:"attribute,omitempty" mapstructure:"attribute"` // State key read by ToHue

	OnAction  string `json:"on_action,omitempty" mapstructure:"on_action"`
	OffAction string `json:"off_action,omitempty" mapstructure:"off_action"`
	Param     string `json:"param,omitempty" mapstructure:"param"` // Param name written by ToAction
}

// TranslatorConfig maps thing IDs to their custom formulas.
type TranslatorConfig struct {
	Formulas map[string]*FormulaConfig `json:"formulas" mapstructure:"formulas"`
}

func (c *TranslatorConfig) Formula(thingID string) *FormulaConfig {
	if c == nil || c.Formulas == nil {
		return nil
	}
	if f, ok := c.Formulas[thingID]; ok {
		return f
	}
	// viper lower-cases map keys read from files and env.
	return c.Formulas[strings.ToLower(thingID)]
}
