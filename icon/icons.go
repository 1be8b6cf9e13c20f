package icon

// Icon identifies a symbol in the registry.
type Icon int

const (
	Lua Icon = iota
	Fail
	Success
	Progress
	Search
	Link
	Mark
	Movie
	TV
	Magnet
	Download
	Play
	History
	Star
)

var icons = map[Icon]*iconDef{
	Lua: {
		emoji:   "🌙",
		nerd:    "",
		plain:   "Lua",
		kaomoji: "(=^･ω･^=)",
		squares: "◧",
	},
	Fail: {
		emoji:   "💀",
		nerd:    "",
		plain:   "X",
		kaomoji: "(╯°□°)╯︵ ┻━┻",
		squares: "▨",
	},
	Success: {
		emoji:   "🎉",
		nerd:    "",
		plain:   "Success",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "▣",
	},
	Progress: {
		emoji:   "👾",
		nerd:    "",
		plain:   "~",
		kaomoji: "┬─┬ノ( º _ ºノ)",
		squares: "□",
	},
	Search: {
		emoji:   "🔍",
		nerd:    "",
		plain:   "?",
		kaomoji: "(・_・ヾ",
		squares: "◫",
	},
	Link: {
		emoji:   "🔗",
		nerd:    "",
		plain:   "&",
		kaomoji: "(∗ᵒ̶̶̷̀ω˂̶́∗)੭₎₎̊₊♡",
		squares: "▤",
	},
	Mark: {
		emoji:   "✅",
		nerd:    "",
		plain:   "*",
		kaomoji: "(* ^ ω ^)",
		squares: "■",
	},
	Movie: {
		emoji:   "🎬",
		nerd:    "",
		plain:   "[M]",
		kaomoji: "(⌐■_■)",
		squares: "▦",
	},
	TV: {
		emoji:   "📺",
		nerd:    "",
		plain:   "[TV]",
		kaomoji: "(￣▽￣)ノ",
		squares: "▩",
	},
	Magnet: {
		emoji:   "🧲",
		nerd:    "",
		plain:   "U",
		kaomoji: "(っ˘ڡ˘ς)",
		squares: "◨",
	},
	Download: {
		emoji:   "📥",
		nerd:    "",
		plain:   "v",
		kaomoji: "ヽ(・∀・)ﾉ",
		squares: "▼",
	},
	Play: {
		emoji:   "▶️",
		nerd:    "",
		plain:   ">",
		kaomoji: "(ﾉ◕ヮ◕)ﾉ*:･ﾟ✧",
		squares: "▶",
	},
	History: {
		emoji:   "🕘",
		nerd:    "",
		plain:   "H",
		kaomoji: "(｡•́︿•̀｡)",
		squares: "◷",
	},
	Star: {
		emoji:   "⭐",
		nerd:    "",
		plain:   "*",
		kaomoji: "☆",
		squares: "★",
	},
}
