package icon

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota + 1
	Fail
	Progress
	Warn
	Swatch
	Context
	Variable
	Class
	Mark
	Watch
	Search
)

var icons = map[Icon]*iconDef{
	Success: {
		emoji:   "✅",
		nerd:    "",
		plain:   "OK",
		kaomoji: "(๑˃ᴗ˂)ﻭ",
		squares: "🟩",
	},
	Fail: {
		emoji:   "❌",
		nerd:    "",
		plain:   "X",
		kaomoji: "(╥﹏╥)",
		squares: "🟥",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "...",
		kaomoji: "(・_・;)",
		squares: "🟨",
	},
	Warn: {
		emoji:   "⚠️",
		nerd:    "",
		plain:   "!",
		kaomoji: "(°ロ°)",
		squares: "🟧",
	},
	Swatch: {
		emoji:   "🎨",
		nerd:    "",
		plain:   "#",
		kaomoji: "(ﾉ◕ヮ◕)ﾉ*:･ﾟ✧",
		squares: "🟪",
	},
	Context: {
		emoji:   "🌓",
		nerd:    "",
		plain:   "@",
		kaomoji: "(◐‿◑)",
		squares: "⬛",
	},
	Variable: {
		emoji:   "🏷️",
		nerd:    "",
		plain:   "--",
		kaomoji: "(￣ー￣)",
		squares: "🟦",
	},
	Class: {
		emoji:   "💨",
		nerd:    "",
		plain:   ".",
		kaomoji: "(~‾▿‾)~",
		squares: "🟫",
	},
	Mark: {
		emoji:   "👉",
		nerd:    "",
		plain:   ">",
		kaomoji: "(☞ﾟヮﾟ)☞",
		squares: "▶️",
	},
	Watch: {
		emoji:   "👀",
		nerd:    "",
		plain:   "~",
		kaomoji: "(⊙_⊙)",
		squares: "⬜",
	},
	Search: {
		emoji:   "🔍",
		nerd:    "",
		plain:   "?",
		kaomoji: "(・・ )?",
		squares: "🔳",
	},
}
