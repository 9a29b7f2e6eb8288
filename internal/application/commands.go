package application

import (
	"strings"

	"github.com/bnema/tabboard/internal/domain"
)

type SessionOptions struct {
	DisplayName string
	InitialView domain.View
}

func (o SessionOptions) withDefaults() SessionOptions {
	if strings.TrimSpace(o.DisplayName) == "" {
		o.DisplayName = domain.DefaultDisplayName
	}
	if !o.InitialView.Valid() {
		o.InitialView = domain.ViewBoard
	}
	return o
}
