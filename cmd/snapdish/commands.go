package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"snapdish/internal/domain/entity"
	"snapdish/internal/util"

	"github.com/pkg/errors"
)

type command func(ctx context.Context, deps *app, args []string) error

var commands = map[string]command{
	"register":        runRegister,
	"login":           runLogin,
	"logout":          runLogout,
	"status":          runStatus,
	"classify":        runClassify,
	"add-meal":        runAddMeal,
	"meals":           runMeals,
	"update-meal":     runUpdateMeal,
	"add-ingredients": runAddIngredients,
}

var commandOrder = []string{
	"register", "login", "logout", "status",
	"classify", "add-meal", "meals", "update-meal", "add-ingredients",
}

var commandHelp = map[string]string{
	"register":        "Create an account (-email, -password)",
	"login":           "Log in and remember the session (-email, -password)",
	"logout":          "Forget the stored session",
	"status":          "Show the stored session",
	"classify":        "Guess the dish on a photo (-photo)",
	"add-meal":        "Log a meal; name and calories default to the classifier's guess",
	"meals":           "List logged meals grouped by day",
	"update-meal":     "Change fields of a logged meal (-id)",
	"add-ingredients": "Append ingredients to a meal (-id, -item name=calories ...)",
}

// stdout is swapped in tests.
var stdout io.Writer = os.Stdout

func credentialFlags(name string) (*flag.FlagSet, *string, *string) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	email := fs.String("email", "", "Account email")
	password := fs.String("password", os.Getenv("SNAPDISH_PASSWORD"), "Account password (defaults to $SNAPDISH_PASSWORD)")

	return fs, email, password
}

func runRegister(ctx context.Context, deps *app, args []string) error {
	fs, email, password := credentialFlags("register")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ack, err := deps.sessions.Register(ctx, entity.Credentials{Email: *email, Password: *password})
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "%s (user %s)\n", orDefault(ack.Message, "Registered"), orDefault(ack.UserID, "unknown"))

	return nil
}

func runLogin(ctx context.Context, deps *app, args []string) error {
	fs, email, password := credentialFlags("login")
	if err := fs.Parse(args); err != nil {
		return err
	}

	session, err := deps.sessions.Login(ctx, entity.Credentials{Email: *email, Password: *password})
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, "Logged in.")
	printSession(session)

	return nil
}

func runLogout(ctx context.Context, deps *app, _ []string) error {
	if err := deps.sessions.Logout(ctx); err != nil {
		return err
	}

	fmt.Fprintln(stdout, "Logged out.")

	return nil
}

func runStatus(ctx context.Context, deps *app, _ []string) error {
	session, err := deps.sessions.Current(ctx)
	if err != nil {
		return err
	}

	printSession(session)

	return nil
}

func printSession(session *entity.Session) {
	if session.ExpiresAt == nil {
		fmt.Fprintln(stdout, "Session has no known expiry.")

		return
	}

	fmt.Fprintf(stdout, "Session expires in %s.\n", util.FormatDuration(time.Until(*session.ExpiresAt)))
}

// capture copies a local photo into the image store.
func capture(ctx context.Context, deps *app, path string) (string, error) {
	if path == "" {
		return "", errors.New("-photo is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(err, "read photo")
	}

	return deps.photos.Capture(ctx, data)
}

func runClassify(ctx context.Context, deps *app, args []string) error {
	fs := flag.NewFlagSet("classify", flag.ContinueOnError)
	photoPath := fs.String("photo", "", "Path of the photo to classify")
	if err := fs.Parse(args); err != nil {
		return err
	}

	address, err := capture(ctx, deps, *photoPath)
	if err != nil {
		return err
	}
	defer deps.photos.Discard(context.WithoutCancel(ctx), address)

	result, err := deps.classification.Classify(ctx, address)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "%s (%.1f%%), about %d kcal\n", result.PredictedClass, result.Probability*100, result.EstimatedCalories)

	return nil
}

func runAddMeal(ctx context.Context, deps *app, args []string) error {
	fs := flag.NewFlagSet("add-meal", flag.ContinueOnError)
	photoPath := fs.String("photo", "", "Path of the meal photo")
	name := fs.String("name", "", "Meal name (defaults to the predicted dish)")
	calories := fs.Int("calories", -1, "Calories (defaults to the estimate)")
	eaten := fs.String("time", "", "When the meal was eaten, ISO-8601 (defaults to now)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	loc, err := deps.cfg.Storage.Location()
	if err != nil {
		return err
	}
	when := time.Now().In(loc)
	if *eaten != "" {
		if when, err = util.ParseTimestamp(*eaten, loc); err != nil {
			return err
		}
	}

	address, err := capture(ctx, deps, *photoPath)
	if err != nil {
		return err
	}
	defer deps.photos.Discard(context.WithoutCancel(ctx), address)

	if *name == "" || *calories < 0 {
		guess, err := deps.classification.Classify(ctx, address)
		if err != nil {
			return err
		}
		if *name == "" {
			*name = guess.PredictedClass
		}
		if *calories < 0 {
			*calories = guess.EstimatedCalories
		}
	}

	meal, err := deps.meals.AddMeal(ctx, &entity.MealUpload{
		Photo:    address,
		Name:     *name,
		Calories: *calories,
		Time:     when,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Added %s: %s, %d kcal at %s\n", meal.ID, meal.Name, meal.Calories, meal.Time.In(loc).Format(time.DateTime))

	return nil
}

func runMeals(ctx context.Context, deps *app, _ []string) error {
	loc, err := deps.cfg.Storage.Location()
	if err != nil {
		return err
	}

	meals, err := deps.meals.ListMeals(ctx)
	if err != nil {
		return err
	}
	if len(meals) == 0 {
		fmt.Fprintln(stdout, "No meals logged yet.")

		return nil
	}

	for _, day := range entity.GroupMealsByDay(meals, loc) {
		fmt.Fprintf(stdout, "%s  %d kcal\n", day.Date.Format(time.DateOnly), day.TotalCalories)
		for _, meal := range day.Meals {
			fmt.Fprintf(stdout, "  %s  %-24s %5d kcal  %s\n",
				meal.Time.In(loc).Format(time.Kitchen), meal.Name, meal.Calories, orDefault(meal.Image, "-"))
		}
	}

	return nil
}

func runUpdateMeal(ctx context.Context, deps *app, args []string) error {
	fs := flag.NewFlagSet("update-meal", flag.ContinueOnError)
	id := fs.String("id", "", "Meal ID")
	name := fs.String("name", "", "New name")
	calories := fs.Int("calories", -1, "New calories")
	eaten := fs.String("time", "", "New time, ISO-8601")
	photoPath := fs.String("photo", "", "Path of a replacement photo")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var patch entity.MealPatch
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["name"] {
		patch.Name = name
	}
	if set["calories"] {
		patch.Calories = calories
	}
	if set["time"] {
		loc, err := deps.cfg.Storage.Location()
		if err != nil {
			return err
		}
		when, err := util.ParseTimestamp(*eaten, loc)
		if err != nil {
			return err
		}
		patch.Time = &when
	}
	if set["photo"] {
		address, err := capture(ctx, deps, *photoPath)
		if err != nil {
			return err
		}
		defer deps.photos.Discard(context.WithoutCancel(ctx), address)
		patch.Photo = &address
	}

	if err := deps.meals.UpdateMeal(ctx, *id, patch); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Updated %s.\n", *id)

	return nil
}

// ingredientList collects repeated -item name=calories flags.
type ingredientList []entity.Ingredient

func (l *ingredientList) String() string {
	parts := make([]string, 0, len(*l))
	for _, ingredient := range *l {
		parts = append(parts, fmt.Sprintf("%s=%d", ingredient.Name, ingredient.Calories))
	}

	return strings.Join(parts, ",")
}

func (l *ingredientList) Set(value string) error {
	name, rawCalories, ok := strings.Cut(value, "=")
	if !ok {
		return errors.Errorf("expected name=calories, got %q", value)
	}

	calories, err := strconv.ParseFloat(strings.TrimSpace(rawCalories), 64)
	if err != nil || calories > math.MaxInt32 {
		return errors.Errorf("invalid calories in %q", value)
	}

	*l = append(*l, entity.Ingredient{Name: strings.TrimSpace(name), Calories: int(math.Floor(calories))})

	return nil
}

func runAddIngredients(ctx context.Context, deps *app, args []string) error {
	fs := flag.NewFlagSet("add-ingredients", flag.ContinueOnError)
	id := fs.String("id", "", "Meal ID")
	var items ingredientList
	fs.Var(&items, "item", "Ingredient as name=calories, repeatable")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := deps.meals.AddIngredients(ctx, *id, items)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Meal %s now has %d ingredients, %d kcal.\n", *id, len(result.IngredientIDs), result.Calories)

	return nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}

	return s
}
