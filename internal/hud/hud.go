// Package hud shows the player's counters and announcements.
package hud

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// HUD receives counter changes from the game.
type HUD interface {
	CoinsChanged(coins int)
	StarsChanged(collected, total int)
	Announce(message string)
}

func CoinText(coins int) string {
	return fmt.Sprintf("Coins: %d", coins)
}

func StarText(collected, total int) string {
	return fmt.Sprintf("Stars: %d/%d", collected, total)
}

// State is the text currently on screen. Announcements fade after
// AnnounceDuration seconds.
type State struct {
	Coins            string
	Stars            string
	Announcement     string
	AnnounceDuration float32

	announceLeft float32
}

func NewState() *State {
	return &State{
		Coins:            CoinText(0),
		AnnounceDuration: 5,
	}
}

func (s *State) CoinsChanged(coins int) {
	s.Coins = CoinText(coins)
}

func (s *State) StarsChanged(collected, total int) {
	s.Stars = StarText(collected, total)
}

func (s *State) Announce(message string) {
	s.Announcement = message
	s.announceLeft = s.AnnounceDuration
}

// Update fades the announcement out.
func (s *State) Update(deltaTime float32) {
	if s.announceLeft <= 0 {
		return
	}
	s.announceLeft -= deltaTime
	if s.announceLeft <= 0 {
		s.announceLeft = 0
		s.Announcement = ""
	}
}

// Log reports HUD changes to a logger, for headless runs.
type Log struct {
	Logger *log.Logger
}

func (l Log) CoinsChanged(coins int) {
	l.Logger.Info("coins", "total", coins)
}

func (l Log) StarsChanged(collected, total int) {
	l.Logger.Info("stars", "collected", collected, "total", total)
}

func (l Log) Announce(message string) {
	l.Logger.Info("announcement", "message", message)
}

// Multi fans every call out to several HUDs.
type Multi []HUD

func (m Multi) CoinsChanged(coins int) {
	for _, h := range m {
		h.CoinsChanged(coins)
	}
}

func (m Multi) StarsChanged(collected, total int) {
	for _, h := range m {
		h.StarsChanged(collected, total)
	}
}

func (m Multi) Announce(message string) {
	for _, h := range m {
		h.Announce(message)
	}
}
