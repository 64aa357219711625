// File: cmd/app/repl.go
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"ai-health-assistant/internal/domain/model"
	"ai-health-assistant/internal/domain/ports/adapter"
	"ai-health-assistant/internal/health"
	"ai-health-assistant/internal/infra/i18n"
	"ai-health-assistant/internal/usecase"
)

// repl is the interactive terminal front end. Plain text goes to the chat
// controller; slash commands drive the rest of the assistant.
type repl struct {
	api     adapter.Backend
	session usecase.SessionUseCase
	chat    usecase.ChatUseCase
	goal    usecase.GoalUseCase
	summary usecase.SummaryUseCase
	weight  usecase.WeightUseCase
	entry   usecase.EntryUseCase
	food    usecase.FoodUseCase
	cat     *i18n.Catalog
	tips    *health.TipRotation
	log     *zerolog.Logger
	done    chan struct{}
}

func newREPL(
	api adapter.Backend,
	session usecase.SessionUseCase,
	chat usecase.ChatUseCase,
	goal usecase.GoalUseCase,
	summary usecase.SummaryUseCase,
	weight usecase.WeightUseCase,
	entry usecase.EntryUseCase,
	food usecase.FoodUseCase,
	cat *i18n.Catalog,
	logger *zerolog.Logger,
) *repl {
	return &repl{
		api:     api,
		session: session,
		chat:    chat,
		goal:    goal,
		summary: summary,
		weight:  weight,
		entry:   entry,
		food:    food,
		cat:     cat,
		tips:    health.NewTipRotation(cat.Tips()),
		log:     logger,
		done:    make(chan struct{}),
	}
}

func (r *repl) run(ctx context.Context, in io.Reader, out io.Writer) {
	defer close(r.done)

	// Replay anything the startup sequence already appended.
	for _, m := range r.chat.Messages() {
		fmt.Fprintf(out, "%s: %s\n", m.Author, m.Text)
	}
	fmt.Fprintln(out, `Type a message to chat, or /help for commands.`)

	sc := bufio.NewScanner(in)
	for prompt(out); sc.Scan(); prompt(out) {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "/") {
			reply, err := r.chat.SendMessage(ctx, line)
			if err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
				continue
			}
			fmt.Fprintf(out, "assistant: %s\n", reply)
			continue
		}
		if quit := r.dispatch(ctx, out, sc, line); quit {
			return
		}
	}
}

func prompt(out io.Writer) { fmt.Fprint(out, "> ") }

func (r *repl) dispatch(ctx context.Context, out io.Writer, sc *bufio.Scanner, line string) (quit bool) {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "/quit", "/exit":
		return true
	case "/help":
		r.printHelp(out)
	case "/login":
		r.cmdLogin(ctx, out, args)
	case "/logout":
		r.session.Logout()
		fmt.Fprintln(out, "logged out")
	case "/goal":
		r.cmdGoal(ctx, out, sc)
	case "/summary":
		r.cmdSummary(ctx, out)
	case "/bmi":
		r.cmdBMI(out, args)
	case "/bmr":
		r.cmdBMR(out, args)
	case "/weight":
		r.cmdWeight(ctx, out, args)
	case "/weights":
		r.cmdWeights(ctx, out)
	case "/food":
		r.cmdFood(ctx, out, args)
	case "/entry":
		r.cmdEntry(ctx, out, args)
	case "/tip":
		if tip, ok := r.tips.Next(); ok {
			fmt.Fprintf(out, "%s: %s\n", tip.Title, tip.Content)
		}
	default:
		fmt.Fprintf(out, "unknown command %s; try /help\n", cmd)
	}
	return false
}

func (r *repl) printHelp(out io.Writer) {
	fmt.Fprint(out, `commands:
  /login <email> <password>   sign in
  /logout                     sign out and clear the conversation
  /goal                       set your health goal (interactive)
  /summary                    today's dashboard snapshot
  /bmi <kg> <cm>              body mass index
  /bmr <male|female|other> <kg> <cm> <age> <activity>
  /weight <kg>                log a weight measurement
  /weights                    weight history and change
  /food <name>                nutrition lookup
  /entry <type> <value> <unit> [name]
  /tip                        next nutrition tip
  /quit
`)
}

func (r *repl) cmdLogin(ctx context.Context, out io.Writer, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(out, "usage: /login <email> <password>")
		return
	}
	res, err := r.api.Login(ctx, args[0], args[1])
	if err != nil {
		fmt.Fprintf(out, "login failed: %v\n", err)
		return
	}
	r.session.Login(res.Token, res.User)
	fmt.Fprintf(out, "welcome, %s\n", res.User.Name)
	r.printNewNotices(out)
}

func (r *repl) cmdGoal(ctx context.Context, out io.Writer, sc *bufio.Scanner) {
	r.goal.OpenEditor()
	form := model.GoalForm{
		GoalType:           ask(out, sc, "goal type (weight_loss/muscle_gain/healthy_eating/overall_fitness/general_wellness)"),
		CurrentWeight:      ask(out, sc, "current weight (kg)"),
		TargetWeight:       ask(out, sc, "target weight (kg)"),
		Height:             ask(out, sc, "height (cm)"),
		Age:                ask(out, sc, "age"),
		Gender:             ask(out, sc, "gender (male/female/other)"),
		ActivityLevel:      ask(out, sc, "activity level (sedentary/lightly_active/moderately_active/very_active/extra_active)"),
		Timeframe:          ask(out, sc, "timeframe (e.g. 3 months)"),
		DietaryPreferences: ask(out, sc, "dietary preferences (optional)"),
		Allergies:          ask(out, sc, "allergies (optional)"),
	}
	if err := r.goal.SubmitGoal(ctx, form); err != nil {
		fmt.Fprintf(out, "goal not saved: %v\n", err)
		return
	}
	r.printNewNotices(out)
}

func (r *repl) cmdSummary(ctx context.Context, out io.Writer) {
	sess := r.session.Current()
	if sess.User == nil {
		fmt.Fprintln(out, r.cat.T("chat.login_required"))
		return
	}
	sum, err := r.summary.Daily(ctx, strconv.FormatInt(sess.User.ID, 10))
	if err != nil {
		fmt.Fprintf(out, "summary unavailable: %v\n", err)
		return
	}
	fmt.Fprintf(out, "summary for %s\n", sum.Date)
	fmt.Fprintf(out, "  steps: %d  sleep: %.1fh  water: %.1f  calories: %.0f\n",
		sum.Metrics.TotalSteps, sum.Metrics.AvgSleepHours,
		sum.Metrics.AvgWaterIntake, sum.Metrics.TotalCaloriesConsumed)
	for name, p := range sum.GoalProgress {
		fmt.Fprintf(out, "  %s: %.0f/%.0f (%.0f%%)\n", name, p.Current, p.Target, p.Progress)
	}
	if sum.DailyTip != "" {
		fmt.Fprintf(out, "  tip: %s\n", sum.DailyTip)
	}
}

func (r *repl) cmdBMI(out io.Writer, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(out, "usage: /bmi <weight-kg> <height-cm>")
		return
	}
	w, err1 := strconv.ParseFloat(args[0], 64)
	h, err2 := strconv.ParseFloat(args[1], 64)
	if err1 != nil || err2 != nil {
		fmt.Fprintln(out, "weight and height must be numbers")
		return
	}
	res, err := health.BMI(w, h)
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(out, "BMI %.1f (%s)\n", res.BMI, res.Category)
}

func (r *repl) cmdBMR(out io.Writer, args []string) {
	if len(args) != 5 {
		fmt.Fprintln(out, "usage: /bmr <male|female|other> <weight-kg> <height-cm> <age> <activity>")
		return
	}
	w, err1 := strconv.ParseFloat(args[1], 64)
	h, err2 := strconv.ParseFloat(args[2], 64)
	age, err3 := strconv.Atoi(args[3])
	if err1 != nil || err2 != nil || err3 != nil {
		fmt.Fprintln(out, "weight, height and age must be numbers")
		return
	}
	res, err := health.BMR(model.Gender(args[0]), w, h, age, model.ActivityLevel(args[4]))
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(out, "BMR %d cal/day, TDEE %d cal/day\n", res.BMR, res.TDEE)
}

func (r *repl) cmdWeight(ctx context.Context, out io.Writer, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(out, "usage: /weight <kg>")
		return
	}
	kg, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		fmt.Fprintln(out, "weight must be a number")
		return
	}
	entry, err := r.weight.Log(ctx, kg)
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(out, "logged %.1f kg at %s\n", entry.Weight, entry.LoggedAt.Format("2006-01-02 15:04"))
	if delta, ok, err := r.weight.Change(ctx); err == nil && ok {
		fmt.Fprintf(out, "change since last: %+.1f kg\n", delta)
	}
}

func (r *repl) cmdWeights(ctx context.Context, out io.Writer) {
	entries, err := r.weight.History(ctx, 10)
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		return
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, "no weight entries yet")
		return
	}
	for _, e := range entries {
		fmt.Fprintf(out, "  %s  %.1f kg\n", e.LoggedAt.Format("2006-01-02 15:04"), e.Weight)
	}
}

func (r *repl) cmdFood(ctx context.Context, out io.Writer, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(out, "usage: /food <name>")
		return
	}
	info, err := r.food.Search(ctx, strings.Join(args, " "))
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(out, "%s: %.0f cal, %.1fg protein, %.1fg carbs, %.1fg fat, %.1fg fiber\n",
		info.Name, info.Calories, info.Protein, info.Carbs, info.Fat, info.Fiber)
}

func (r *repl) cmdEntry(ctx context.Context, out io.Writer, args []string) {
	if len(args) < 3 {
		fmt.Fprintln(out, "usage: /entry <type> <value> <unit> [name]")
		return
	}
	value, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		fmt.Fprintln(out, "value must be a number")
		return
	}
	e := model.Entry{
		Type:  model.EntryType(args[0]),
		Value: value,
		Unit:  args[2],
		Name:  strings.Join(args[3:], " "),
	}
	if err := r.entry.Add(ctx, e); err != nil {
		fmt.Fprintf(out, "entry not saved: %v\n", err)
		return
	}
	fmt.Fprintln(out, r.cat.T("entry.saved"))
}

// printNewNotices flushes assistant notices appended since the last flush
// (goal summaries, invitations, confirmations).
func (r *repl) printNewNotices(out io.Writer) {
	msgs := r.chat.Messages()
	if len(msgs) == 0 {
		return
	}
	// The chat log was just touched by a session transition; show the tail.
	last := msgs[len(msgs)-1]
	if last.Author == model.AuthorAssistant {
		fmt.Fprintf(out, "assistant: %s\n", last.Text)
	}
}

func ask(out io.Writer, sc *bufio.Scanner, label string) string {
	fmt.Fprintf(out, "%s: ", label)
	if !sc.Scan() {
		return ""
	}
	return strings.TrimSpace(sc.Text())
}
