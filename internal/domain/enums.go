package domain

// BlockPurpose categorizes what a time block was spent on.
type BlockPurpose string

const (
	BlockPurposeFocus      BlockPurpose = "FOCUS"
	BlockPurposeShortBreak BlockPurpose = "SHORT_BREAK"
	BlockPurposeLongBreak  BlockPurpose = "LONG_BREAK"
)

func (p BlockPurpose) String() string { return string(p) }

func (p BlockPurpose) IsValid() bool {
	switch p {
	case BlockPurposeFocus, BlockPurposeShortBreak, BlockPurposeLongBreak:
		return true
	}
	return false
}

// IsBreak reports whether the purpose is one of the break kinds.
// Break blocks may not carry a todo or tag association.
func (p BlockPurpose) IsBreak() bool {
	return p == BlockPurposeShortBreak || p == BlockPurposeLongBreak
}

// BlockMode distinguishes fixed-duration timers from open-ended stopwatches.
type BlockMode string

const (
	BlockModeTimer     BlockMode = "TIMER"
	BlockModeStopwatch BlockMode = "STOPWATCH"
)

func (m BlockMode) String() string { return string(m) }

func (m BlockMode) IsValid() bool {
	switch m {
	case BlockModeTimer, BlockModeStopwatch:
		return true
	}
	return false
}

// Theme is the UI theme preference stored in user settings.
type Theme string

const (
	ThemeLight Theme = "LIGHT"
	ThemeDark  Theme = "DARK"
	ThemeAuto  Theme = "AUTO"
)

func (t Theme) String() string { return string(t) }

func (t Theme) IsValid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeAuto:
		return true
	}
	return false
}
