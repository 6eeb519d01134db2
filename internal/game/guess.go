package game

// GuessLocation resolves the spy's location guess by exact string equality.
// It is available whenever a round has an active location (PLAYING or
// VOTING) and reports false outside of one. The state is left untouched;
// only a reset returns the room to LOBBY.
func (r *Room) GuessLocation(name string) (Winner, bool) {
	if r.ActualLocation == "" {
		return "", false
	}
	if name == r.ActualLocation {
		return WinnerSpy, true
	}
	return WinnerVillagers, true
}
