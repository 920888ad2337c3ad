// Package viewstate is the explicit client state container: it holds the
// in-memory UI state and mirrors the two durable records (saved recipes,
// profile) to the store with explicit save calls after each transition.
package viewstate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/nutricoach/backend/internal/store"
	"github.com/nutricoach/backend/internal/types"
)

// Tab is the active client view.
type Tab string

const (
	TabHome    Tab = "home"
	TabSaved   Tab = "saved"
	TabProfile Tab = "profile"
)

const (
	greeting = "Hey! I'm your gentle nutrition coach. Ask me about your meal, PCOS-friendly swaps, or healthier snack ideas."
	apology  = "I had trouble replying just now. Please check your server and try again."
)

// ErrAlreadySaved signals a duplicate save attempt; the collection is left
// untouched.
var ErrAlreadySaved = errors.New("recipe already saved")

// API is the slice of the backend client the state container depends on.
type API interface {
	GenerateRecipes(ctx context.Context, ingredients string, goal types.Goal, diet types.Diet) ([]types.Recipe, error)
	AskCoach(ctx context.Context, message string, goal types.Goal, recipe *types.Recipe) (*types.CoachReply, error)
}

// State holds the client's working state. It is not safe for concurrent
// use; the client is single-threaded and event-driven.
type State struct {
	api   API
	store *store.Store

	Ingredients      string
	Goal             types.Goal
	Diet             types.Diet
	Recipes          []types.Recipe
	SelectedRecipeID int // 0 means none
	Transcript       []types.ChatMessage
	Saved            []types.Recipe
	Profile          types.Profile
	ActiveTab        Tab

	subscribers []func()
}

// New creates a state container with initial defaults and the coach
// greeting already in the transcript.
func New(api API, st *store.Store) *State {
	return &State{
		api:        api,
		store:      st,
		Goal:       types.DefaultGoal,
		Diet:       types.DefaultDiet,
		Profile:    types.DefaultProfile(),
		ActiveTab:  TabHome,
		Transcript: []types.ChatMessage{{From: types.FromBot, Text: greeting}},
	}
}

// Subscribe registers a change listener, called after every transition.
func (s *State) Subscribe(fn func()) {
	s.subscribers = append(s.subscribers, fn)
}

func (s *State) notify() {
	for _, fn := range s.subscribers {
		fn()
	}
}

// Load restores saved recipes and profile from durable storage. Missing or
// corrupt values leave the defaults in place; Load never fails.
func (s *State) Load() {
	if raw, ok, err := s.store.Load(store.KeySavedRecipes); err == nil && ok {
		var saved []types.Recipe
		if json.Unmarshal(raw, &saved) == nil {
			s.Saved = saved
		}
	}

	if raw, ok, err := s.store.Load(store.KeyProfile); err == nil && ok {
		var p types.Profile
		if json.Unmarshal(raw, &p) == nil {
			s.Profile = p
			s.Goal = p.Goal.OrDefault()
			s.Diet = p.Diet.OrDefault()
		}
	}

	s.notify()
}

// SelectedRecipe returns the currently selected recipe, or nil.
func (s *State) SelectedRecipe() *types.Recipe {
	for i := range s.Recipes {
		if s.Recipes[i].ID == s.SelectedRecipeID {
			return &s.Recipes[i]
		}
	}
	return nil
}

// GenerateRecipes clears the working set, then replaces it with the
// endpoint result, auto-selecting the first recipe. A transport error is
// returned to the caller and leaves the cleared state visible.
func (s *State) GenerateRecipes(ctx context.Context) error {
	s.Recipes = nil
	s.SelectedRecipeID = 0
	s.notify()

	recipes, err := s.api.GenerateRecipes(ctx, s.Ingredients, s.Goal, s.Diet)
	if err != nil {
		return err
	}

	s.Recipes = recipes
	if len(recipes) > 0 {
		s.SelectedRecipeID = recipes[0].ID
	}
	s.notify()
	return nil
}

// SendCoachMessage appends the user message optimistically, then the bot
// reply and one message per tip, or an apology when the call fails.
func (s *State) SendCoachMessage(ctx context.Context, text string) {
	msg := strings.TrimSpace(text)
	if msg == "" {
		return
	}

	s.Transcript = append(s.Transcript, types.ChatMessage{From: types.FromUser, Text: msg})
	s.notify()

	reply, err := s.api.AskCoach(ctx, msg, s.Goal, s.SelectedRecipe())
	if err != nil {
		s.Transcript = append(s.Transcript, types.ChatMessage{From: types.FromBot, Text: apology})
		s.notify()
		return
	}

	s.Transcript = append(s.Transcript, types.ChatMessage{From: types.FromBot, Text: reply.Reply})
	for _, tip := range reply.Tips {
		s.Transcript = append(s.Transcript, types.ChatMessage{From: types.FromBot, Text: "Tip: " + tip})
	}
	s.notify()
}

// SaveRecipe appends to the saved collection and persists it. Two recipes
// are duplicates when title and approxTimeMins match exactly.
func (s *State) SaveRecipe(r types.Recipe) error {
	for _, existing := range s.Saved {
		if existing.Title == r.Title && existing.ApproxTimeMins == r.ApproxTimeMins {
			return ErrAlreadySaved
		}
	}

	s.Saved = append(s.Saved, r)
	err := s.persistSaved()
	s.notify()
	return err
}

// SaveSelected saves the currently selected recipe.
func (s *State) SaveSelected() error {
	r := s.SelectedRecipe()
	if r == nil {
		return errors.New("no recipe selected")
	}
	return s.SaveRecipe(*r)
}

// RemoveSaved removes the saved recipe at index i, preserving the relative
// order of the rest, and persists the collection.
func (s *State) RemoveSaved(i int) error {
	if i < 0 || i >= len(s.Saved) {
		return fmt.Errorf("saved recipe index %d out of range", i)
	}

	s.Saved = append(s.Saved[:i], s.Saved[i+1:]...)
	err := s.persistSaved()
	s.notify()
	return err
}

// SetProfile replaces the profile, persists it and updates the working
// goal and diet.
func (s *State) SetProfile(p types.Profile) error {
	p.Goal = p.Goal.OrDefault()
	p.Diet = p.Diet.OrDefault()

	s.Profile = p
	s.Goal = p.Goal
	s.Diet = p.Diet
	err := s.persistProfile()
	s.notify()
	return err
}

// SetGoal updates the working goal and the profile.
func (s *State) SetGoal(g types.Goal) error {
	s.Goal = g.OrDefault()
	s.Profile.Goal = s.Goal
	err := s.persistProfile()
	s.notify()
	return err
}

// SetDiet updates the working diet and the profile.
func (s *State) SetDiet(d types.Diet) error {
	s.Diet = d.OrDefault()
	s.Profile.Diet = s.Diet
	err := s.persistProfile()
	s.notify()
	return err
}

// SetIngredients updates the working ingredients text.
func (s *State) SetIngredients(text string) {
	s.Ingredients = text
	s.notify()
}

// SetActiveTab switches the visible tab.
func (s *State) SetActiveTab(t Tab) {
	s.ActiveTab = t
	s.notify()
}

func (s *State) persistSaved() error {
	data, err := json.Marshal(s.Saved)
	if err != nil {
		return fmt.Errorf("failed to marshal saved recipes: %w", err)
	}
	return s.store.Save(store.KeySavedRecipes, data)
}

func (s *State) persistProfile() error {
	data, err := json.Marshal(s.Profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	return s.store.Save(store.KeyProfile, data)
}
