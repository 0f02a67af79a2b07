package launcher

// Shell is a shell interpreter plus the script it runs to open a terminal
// editor. Scripts receive the note path as $1 and the terminal editor as $2.
type Shell struct {
	Name   string
	Script string
}

// Args returns the interpreter arguments for path and editor. $0 is set to
// "notetool" so error messages from the shell name the tool.
func (s Shell) Args(path, editor string) []string {
	return []string{"-c", s.Script, "notetool", path, editor}
}

// Platform is the pair of terminal-editor strategies tried after the GUI
// editor is not found.
type Platform struct {
	Primary   Shell
	Secondary Shell
}

// Platforms maps runtime.GOOS to its terminal-editor strategies. A GOOS with
// no entry is unsupported.
var Platforms = map[string]Platform{
	"linux": {
		Primary: Shell{
			Name:   "zsh",
			Script: `x-terminal-emulator -e "$2" "$1"`,
		},
		Secondary: Shell{
			Name:   "bash",
			Script: `gnome-terminal -- "$2" "$1"`,
		},
	},
	"darwin": {
		Primary: Shell{
			Name: "zsh",
			Script: `osascript -e 'on run argv' ` +
				`-e 'tell application "Terminal" to do script (quoted form of item 2 of argv) & " " & (quoted form of item 1 of argv)' ` +
				`-e 'tell application "Terminal" to activate' ` +
				`-e 'end run' "$1" "$2"`,
		},
		Secondary: Shell{
			Name: "bash",
			Script: `osascript -e 'on run argv' ` +
				`-e 'tell application "iTerm" to create window with default profile command ((quoted form of item 2 of argv) & " " & (quoted form of item 1 of argv))' ` +
				`-e 'end run' "$1" "$2"`,
		},
	},
}
