// Command cli is a small terminal client for the recipe and coach
// endpoints. It keeps saved recipes and the profile in a local SQLite file,
// the same way the web client keeps them in browser storage.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nutricoach/backend/internal/client"
	"github.com/nutricoach/backend/internal/store"
	"github.com/nutricoach/backend/internal/types"
	"github.com/nutricoach/backend/internal/viewstate"
)

func main() {
	serverURL := flag.String("server", "http://localhost:5000", "backend base URL")
	dataPath := flag.String("data", defaultDataPath(), "path of the local state file")
	flag.Parse()

	if err := os.MkdirAll(filepath.Dir(*dataPath), 0o755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}
	st, err := store.Open(*dataPath)
	if err != nil {
		log.Fatalf("Failed to open local store: %v", err)
	}

	state := viewstate.New(client.New(*serverURL), st)
	state.Load()

	fmt.Println("NutriCoach CLI. Type 'help' for commands.")
	printTranscriptTail(state, 1)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		cmd, arg := splitCommand(line)
		if cmd == "quit" || cmd == "exit" {
			return
		}
		run(state, cmd, arg)
	}
}

func run(state *viewstate.State, cmd, arg string) {
	ctx := context.Background()

	switch cmd {
	case "help":
		printHelp()

	case "ingredients":
		state.SetIngredients(arg)
		fmt.Println("Ingredients set.")

	case "goal":
		if err := state.SetGoal(types.Goal(arg)); err != nil {
			fmt.Printf("Could not save profile: %v\n", err)
		}
		fmt.Printf("Goal: %s\n", state.Goal)

	case "diet":
		if err := state.SetDiet(types.Diet(arg)); err != nil {
			fmt.Printf("Could not save profile: %v\n", err)
		}
		fmt.Printf("Diet: %s\n", state.Diet)

	case "generate":
		// Checked before any network call, matching the web client.
		if strings.TrimSpace(state.Ingredients) == "" {
			fmt.Println("Please enter at least some ingredients.")
			return
		}
		if err := state.GenerateRecipes(ctx); err != nil {
			fmt.Println("Error generating recipes. Please check if the backend server is running.")
			return
		}
		for _, r := range state.Recipes {
			printRecipe(r, r.ID == state.SelectedRecipeID)
		}

	case "select":
		id, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Println("Usage: select <recipe id>")
			return
		}
		state.SelectedRecipeID = id
		if state.SelectedRecipe() == nil {
			fmt.Println("No recipe with that id in the current list.")
		} else {
			fmt.Printf("Selected: %s\n", state.SelectedRecipe().Title)
		}

	case "coach":
		if strings.TrimSpace(arg) == "" {
			fmt.Println("Usage: coach <message>")
			return
		}
		before := len(state.Transcript)
		state.SendCoachMessage(ctx, arg)
		printTranscriptTail(state, len(state.Transcript)-before-1)

	case "save":
		err := state.SaveSelected()
		switch {
		case errors.Is(err, viewstate.ErrAlreadySaved):
			fmt.Println("This recipe is already saved.")
		case err != nil:
			fmt.Printf("Could not save: %v\n", err)
		default:
			fmt.Println("Recipe saved. See 'saved'.")
		}

	case "saved":
		if len(state.Saved) == 0 {
			fmt.Println("No saved recipes yet.")
			return
		}
		for i, r := range state.Saved {
			fmt.Printf("[%d] %s (%d min)\n", i, r.Title, r.ApproxTimeMins)
		}

	case "remove":
		i, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Println("Usage: remove <index>")
			return
		}
		if err := state.RemoveSaved(i); err != nil {
			fmt.Printf("Could not remove: %v\n", err)
		} else {
			fmt.Println("Removed.")
		}

	case "profile":
		p := state.Profile
		fmt.Printf("diet=%s goal=%s allergies=%q\n", p.Diet, p.Goal, p.Allergies)

	case "allergies":
		p := state.Profile
		p.Allergies = arg
		if err := state.SetProfile(p); err != nil {
			fmt.Printf("Could not save profile: %v\n", err)
		} else {
			fmt.Println("Profile updated.")
		}

	default:
		fmt.Printf("Unknown command %q. Type 'help'.\n", cmd)
	}
}

func printHelp() {
	fmt.Println(`Commands:
  ingredients <text>   set the ingredients you have
  goal <value>         pcos_friendly | weight_loss | high_protein | balanced
  diet <value>         vegetarian | vegan | non_veg
  generate             generate recipes from the current ingredients
  select <id>          select a recipe from the current list
  coach <message>      ask the nutrition coach
  save                 save the selected recipe
  saved                list saved recipes
  remove <index>       remove a saved recipe
  profile              show the profile
  allergies <text>     set allergies / foods to avoid
  quit                 exit`)
}

func printRecipe(r types.Recipe, selected bool) {
	marker := " "
	if selected {
		marker = "*"
	}
	fmt.Printf("%s[%d] %s (%d min)\n", marker, r.ID, r.Title, r.ApproxTimeMins)
	fmt.Printf("    %s\n", r.Description)
	n := r.Nutrition
	fmt.Printf("    %.0f kcal, protein %.0fg, carbs %.0fg, fat %.0fg\n", n.Calories, n.ProteinG, n.CarbsG, n.FatG)
}

func printTranscriptTail(state *viewstate.State, n int) {
	if n <= 0 || n > len(state.Transcript) {
		return
	}
	for _, m := range state.Transcript[len(state.Transcript)-n:] {
		if m.From == types.FromBot {
			fmt.Printf("coach: %s\n", m.Text)
		}
	}
}

func splitCommand(line string) (string, string) {
	parts := strings.SplitN(line, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.TrimSpace(parts[1])
}

func defaultDataPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "nutricoach.db"
	}
	return filepath.Join(home, ".nutricoach", "nutricoach.db")
}
