package redis

// Key patterns:
//   <prefix>:board:<gameID>  sorted set of run IDs ranked by rankScore
//   <prefix>:run:<runID>     JSON-encoded storage.ScoreEntry

func (l *Leaderboard) boardKey(gameID string) string {
	return l.cfg.Prefix + ":board:" + gameID
}

func (l *Leaderboard) runKey(runID string) string {
	return l.cfg.Prefix + ":run:" + runID
}
