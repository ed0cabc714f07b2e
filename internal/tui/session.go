package tui

// session is shared by the pages of one client run.
type session struct {
	login string
}

func (s *session) loggedIn() bool {
	return s != nil && s.login != ""
}
