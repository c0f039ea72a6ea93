package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/JunhyunKang/mock-sol/internal/api"
	"github.com/JunhyunKang/mock-sol/internal/model"
	"github.com/JunhyunKang/mock-sol/internal/transfer"
)

// userInfoMsg delivers the home screen fetch. seq guards against a fetch
// resolving after the screen moved on; stale results are dropped.
type userInfoMsg struct {
	seq  int
	user model.UserInfo
	err  error
}

// searchResultMsg delivers a search dispatch. seq plays the same stale-
// guard role; the request itself is never aborted.
type searchResultMsg struct {
	seq  int
	resp *api.SearchResponse
	err  error
}

// transferResetMsg fires once, ResetDelay after a completed transfer.
type transferResetMsg struct{}

func (a *App) fetchUserInfoCmd() tea.Cmd {
	seq := a.userSeq
	return func() tea.Msg {
		user, err := a.client.UserInfo(a.ctx, "")
		return userInfoMsg{seq: seq, user: user, err: err}
	}
}

func (a *App) searchCmd(query string) tea.Cmd {
	seq := a.searchSeq
	return func() tea.Msg {
		resp, err := a.client.Search(a.ctx, query)
		return searchResultMsg{seq: seq, resp: resp, err: err}
	}
}

func transferResetCmd() tea.Cmd {
	return tea.Tick(transfer.ResetDelay, func(time.Time) tea.Msg {
		return transferResetMsg{}
	})
}
