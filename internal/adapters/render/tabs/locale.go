package tabs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/tabboard/internal/domain"
)

var ErrUnknownLocale = errors.New("unknown locale")

type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleChinese Locale = "zh"
)

type Labels struct {
	Board            string
	Chat             string
	Profile          string
	Send             string
	BoardPlaceholder string
	ChatPlaceholder  string
	EmptyThread      string
	DisplayName      string
	SessionID        string
	StartedAt        string
	MoreInfo         string
	Help             string
}

var labelsByLocale = map[Locale]Labels{
	LocaleEnglish: {
		Board:            "Board",
		Chat:             "Chat",
		Profile:          "Profile",
		Send:             "Send",
		BoardPlaceholder: "Leave a message",
		ChatPlaceholder:  "Say something",
		EmptyThread:      "No messages yet.",
		DisplayName:      "Display name",
		SessionID:        "Session",
		StartedAt:        "Started",
		MoreInfo:         "More profile details can go here.",
		Help:             "tab/shift+tab switch view • enter send • ctrl+c quit",
	},
	LocaleChinese: {
		Board:            "留言板",
		Chat:             "聊天室",
		Profile:          "个人中心",
		Send:             "发送",
		BoardPlaceholder: "输入你的留言",
		ChatPlaceholder:  "输入你的聊天",
		EmptyThread:      "暂无消息",
		DisplayName:      "用户名",
		SessionID:        "会话",
		StartedAt:        "开始时间",
		MoreInfo:         "可以展示更多个人信息",
		Help:             "tab/shift+tab 切换 • enter 发送 • ctrl+c 退出",
	},
}

func ParseLocale(raw string) (Locale, error) {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return LocaleEnglish, nil
	}

	locale := Locale(trimmed)
	if _, ok := labelsByLocale[locale]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLocale, raw)
	}

	return locale, nil
}

func LabelsFor(locale Locale) (Labels, error) {
	if locale == "" {
		locale = LocaleEnglish
	}

	labels, ok := labelsByLocale[locale]
	if !ok {
		return Labels{}, fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
	}

	return labels, nil
}

func (l Labels) ViewTitle(view domain.View) string {
	switch view {
	case domain.ViewBoard:
		return l.Board
	case domain.ViewChat:
		return l.Chat
	case domain.ViewProfile:
		return l.Profile
	default:
		return string(view)
	}
}

func (l Labels) Placeholder(view domain.View) string {
	if view == domain.ViewChat {
		return l.ChatPlaceholder
	}
	return l.BoardPlaceholder
}
