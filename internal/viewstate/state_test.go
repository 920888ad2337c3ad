package viewstate

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutricoach/backend/internal/store"
	"github.com/nutricoach/backend/internal/types"
)

// fakeAPI scripts the backend client for state tests.
type fakeAPI struct {
	recipes    []types.Recipe
	recipesErr error
	reply      *types.CoachReply
	replyErr   error
}

func (f *fakeAPI) GenerateRecipes(ctx context.Context, ingredients string, goal types.Goal, diet types.Diet) ([]types.Recipe, error) {
	return f.recipes, f.recipesErr
}

func (f *fakeAPI) AskCoach(ctx context.Context, message string, goal types.Goal, recipe *types.Recipe) (*types.CoachReply, error) {
	return f.reply, f.replyErr
}

func newTestState(t *testing.T, api API) *State {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	return New(api, st)
}

func sampleRecipe(id int, title string, mins int) types.Recipe {
	return types.Recipe{
		ID:              id,
		Title:           title,
		ApproxTimeMins:  mins,
		IngredientsList: []string{"oats"},
		Steps:           []string{"mix"},
		Nutrition:       types.Nutrition{Calories: 300, ProteinG: 12, Tags: []string{"simple"}},
	}
}

func TestNewStateDefaults(t *testing.T) {
	s := newTestState(t, &fakeAPI{})

	assert.Equal(t, types.DefaultGoal, s.Goal)
	assert.Equal(t, types.DefaultDiet, s.Diet)
	assert.Equal(t, TabHome, s.ActiveTab)
	require.Len(t, s.Transcript, 1)
	assert.Equal(t, types.FromBot, s.Transcript[0].From)
}

func TestGenerateClearsThenSelectsFirst(t *testing.T) {
	api := &fakeAPI{recipes: []types.Recipe{sampleRecipe(1, "Bowl", 15), sampleRecipe(2, "Pan", 20)}}
	s := newTestState(t, api)
	s.SetIngredients("oats, curd")
	s.Recipes = []types.Recipe{sampleRecipe(9, "Stale", 5)}
	s.SelectedRecipeID = 9

	require.NoError(t, s.GenerateRecipes(context.Background()))

	require.Len(t, s.Recipes, 2)
	assert.Equal(t, 1, s.SelectedRecipeID)
	assert.Equal(t, "Bowl", s.SelectedRecipe().Title)
}

func TestGenerateErrorLeavesClearedState(t *testing.T) {
	api := &fakeAPI{recipesErr: errors.New("server unreachable")}
	s := newTestState(t, api)
	s.Recipes = []types.Recipe{sampleRecipe(1, "Stale", 5)}
	s.SelectedRecipeID = 1

	err := s.GenerateRecipes(context.Background())

	require.Error(t, err)
	assert.Empty(t, s.Recipes)
	assert.Zero(t, s.SelectedRecipeID)
}

func TestSendCoachMessageOptimisticAppend(t *testing.T) {
	api := &fakeAPI{reply: &types.CoachReply{Reply: "Nice choice.", Tips: []string{"Add fruit.", "Hydrate."}}}
	s := newTestState(t, api)

	s.SendCoachMessage(context.Background(), "  is oats okay?  ")

	// greeting, user message, reply, two tips
	require.Len(t, s.Transcript, 5)
	assert.Equal(t, types.ChatMessage{From: types.FromUser, Text: "is oats okay?"}, s.Transcript[1])
	assert.Equal(t, "Nice choice.", s.Transcript[2].Text)
	assert.Equal(t, "Tip: Add fruit.", s.Transcript[3].Text)
	assert.Equal(t, "Tip: Hydrate.", s.Transcript[4].Text)
}

func TestSendCoachMessageFailureAppendsApology(t *testing.T) {
	api := &fakeAPI{replyErr: errors.New("server unreachable")}
	s := newTestState(t, api)

	s.SendCoachMessage(context.Background(), "hello")

	require.Len(t, s.Transcript, 3)
	assert.Equal(t, types.FromUser, s.Transcript[1].From)
	assert.Equal(t, types.FromBot, s.Transcript[2].From)
	assert.Contains(t, s.Transcript[2].Text, "trouble replying")
}

func TestSendCoachMessageIgnoresBlank(t *testing.T) {
	s := newTestState(t, &fakeAPI{})
	s.SendCoachMessage(context.Background(), "   ")
	assert.Len(t, s.Transcript, 1)
}

func TestSaveRecipeDedup(t *testing.T) {
	s := newTestState(t, &fakeAPI{})

	require.NoError(t, s.SaveRecipe(sampleRecipe(1, "Oats bowl", 15)))
	require.Len(t, s.Saved, 1)

	// Same title and time: rejected, collection untouched.
	err := s.SaveRecipe(sampleRecipe(7, "Oats bowl", 15))
	assert.ErrorIs(t, err, ErrAlreadySaved)
	assert.Len(t, s.Saved, 1)

	// Same title, different time: not a duplicate.
	require.NoError(t, s.SaveRecipe(sampleRecipe(2, "Oats bowl", 25)))
	assert.Len(t, s.Saved, 2)
}

func TestRemoveSavedPreservesOrder(t *testing.T) {
	s := newTestState(t, &fakeAPI{})
	require.NoError(t, s.SaveRecipe(sampleRecipe(1, "A", 10)))
	require.NoError(t, s.SaveRecipe(sampleRecipe(2, "B", 20)))
	require.NoError(t, s.SaveRecipe(sampleRecipe(3, "C", 30)))

	require.NoError(t, s.RemoveSaved(1))

	require.Len(t, s.Saved, 2)
	assert.Equal(t, "A", s.Saved[0].Title)
	assert.Equal(t, "C", s.Saved[1].Title)

	assert.Error(t, s.RemoveSaved(5))
	assert.Error(t, s.RemoveSaved(-1))
	assert.Len(t, s.Saved, 2)
}

func TestPersistenceRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	st, err := store.Open(path)
	require.NoError(t, err)

	s := New(&fakeAPI{}, st)
	require.NoError(t, s.SaveRecipe(sampleRecipe(1, "Oats bowl", 15)))
	require.NoError(t, s.SetProfile(types.Profile{Diet: types.DietVegan, Goal: types.GoalWeightLoss, Allergies: "peanuts"}))

	// Fresh container over the same file sees identical values.
	reopened, err := store.Open(path)
	require.NoError(t, err)
	s2 := New(&fakeAPI{}, reopened)
	s2.Load()

	assert.Equal(t, s.Saved, s2.Saved)
	assert.Equal(t, s.Profile, s2.Profile)
	assert.Equal(t, types.GoalWeightLoss, s2.Goal)
	assert.Equal(t, types.DietVegan, s2.Diet)
}

func TestLoadToleratesCorruptValues(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	require.NoError(t, st.Save(store.KeySavedRecipes, []byte("{{{not json")))
	require.NoError(t, st.Save(store.KeyProfile, []byte("also broken")))

	s := New(&fakeAPI{}, st)
	s.Load()

	assert.Empty(t, s.Saved)
	assert.Equal(t, types.DefaultProfile(), s.Profile)
	assert.Equal(t, types.DefaultGoal, s.Goal)
}

func TestSubscribeNotifiedOnTransitions(t *testing.T) {
	s := newTestState(t, &fakeAPI{})
	var notified int
	s.Subscribe(func() { notified++ })

	s.SetIngredients("oats")
	s.SetActiveTab(TabSaved)
	require.NoError(t, s.SaveRecipe(sampleRecipe(1, "A", 10)))

	assert.Equal(t, 3, notified)
}

func TestSetGoalUpdatesProfile(t *testing.T) {
	s := newTestState(t, &fakeAPI{})

	require.NoError(t, s.SetGoal(types.GoalHighProtein))
	require.NoError(t, s.SetDiet(types.DietVegan))

	assert.Equal(t, types.GoalHighProtein, s.Profile.Goal)
	assert.Equal(t, types.DietVegan, s.Profile.Diet)
}
