package tui

import "github.com/bnema/tabboard/internal/domain"

const (
	keyQuit     = "ctrl+c"
	keyEscape   = "esc"
	keyNextView = "tab"
	keyPrevView = "shift+tab"
	keySend     = "enter"
)

var jumpKeys = map[string]domain.View{
	"ctrl+b": domain.ViewBoard,
	"ctrl+t": domain.ViewChat,
	"ctrl+p": domain.ViewProfile,
}
