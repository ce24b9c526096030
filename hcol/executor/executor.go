// File: executor.go
// Title: HCOL Command Execution Engine
// Description: Applies validated commands to the goal list, persists the
//              resulting state and produces the results rendered to the user.
//              Execution is serialized; one engine owns one goal list.
// Version: v0.1.0
// Created: 2025-08-31

package executor

import (
	"context"
	"sync"
	"time"

	hberror "github.com/happybit/happybit/core/error"
	hblog "github.com/happybit/happybit/core/log"
	hbcommand "github.com/happybit/happybit/hcol/command"
	"github.com/happybit/happybit/internal/goal"
	"github.com/happybit/happybit/utils/timex"
)

// Store persists the goal list between sessions
type Store interface {
	Load(ctx context.Context) (*goal.List, error)
	Save(ctx context.Context, list *goal.List) error
	Close() error
}

// Engine executes HCOL commands against the goal list
type Engine struct {
	list    *goal.List
	store   Store
	logger  *hblog.Logger
	options Options
	mutex   sync.Mutex
}

// Options configures executor behavior
type Options struct {
	Logger   *hblog.Logger
	Store    Store
	AutoSave bool
}

// Result is the outcome of one executed command
type Result struct {
	Command hbcommand.Kind
	Message string
	Goals   []*goal.Goal
	Goal    *goal.Goal
	Exit    bool
}

// New creates a new execution engine. When a store is configured, the
// persisted goal list is loaded; otherwise the engine starts empty.
func New(ctx context.Context, opts Options) (*Engine, error) {
	if opts.Logger == nil {
		opts.Logger = hblog.GetDefault()
	}

	engine := &Engine{
		list:    goal.NewList(),
		store:   opts.Store,
		logger:  opts.Logger.WithField("component", "hcol-executor"),
		options: opts,
	}

	if opts.Store != nil {
		list, err := opts.Store.Load(ctx)
		if err != nil {
			return nil, hberror.Wrap(err, "failed to load goal list").
				WithCode(hberror.CodeDatabaseError).
				WithOperation("executor.New")
		}
		engine.list = list
	}

	engine.logger.Info("executor initialized", hblog.Fields{
		"goals":    engine.list.Len(),
		"autoSave": opts.AutoSave,
	})
	return engine, nil
}

// List returns the goal list the engine operates on
func (e *Engine) List() *goal.List {
	return e.list
}

// Execute applies one command to the goal list. Mutating commands are
// persisted before the result is returned, so a reported success is durable.
func (e *Engine) Execute(ctx context.Context, cmd hbcommand.Command) (*Result, error) {
	if cmd == nil {
		return nil, hberror.New("command cannot be nil").
			WithCode(hberror.CodeInvalidOperation).
			WithOperation("executor.Execute")
	}

	e.mutex.Lock()
	defer e.mutex.Unlock()

	start := time.Now()
	e.logger.Debug("executing command", hblog.Fields{
		"command": cmd.String(),
	})

	result, mutated, err := e.apply(cmd)
	if err != nil {
		e.logger.Debug("command failed", hblog.Fields{
			"command": cmd.Kind().String(),
			"error":   err.Error(),
		})
		return nil, err
	}

	if mutated && e.store != nil && e.options.AutoSave {
		if err := e.store.Save(ctx, e.list); err != nil {
			return nil, hberror.Wrap(err, "failed to save goal list").
				WithCode(hberror.CodeDatabaseError).
				WithOperation("executor.Execute")
		}
	}

	e.logger.Debug("command completed", hblog.Fields{
		"command":  cmd.Kind().String(),
		"duration": time.Since(start),
	})
	return result, nil
}

// Save persists the current goal list regardless of auto-save
func (e *Engine) Save(ctx context.Context) error {
	if e.store == nil {
		return nil
	}
	e.mutex.Lock()
	defer e.mutex.Unlock()

	if err := e.store.Save(ctx, e.list); err != nil {
		return hberror.Wrap(err, "failed to save goal list").
			WithCode(hberror.CodeDatabaseError).
			WithOperation("executor.Save")
	}
	return nil
}

// Close releases the underlying store
func (e *Engine) Close() error {
	if e.store != nil {
		return e.store.Close()
	}
	return nil
}

// apply dispatches on the command variant. The second return value reports
// whether the goal list changed.
func (e *Engine) apply(cmd hbcommand.Command) (*Result, bool, error) {
	switch c := cmd.(type) {
	case hbcommand.AddGoal:
		return e.addGoal(c)
	case hbcommand.AddHabit:
		return e.addHabit(c)
	case hbcommand.DeleteGoal:
		return e.deleteGoal(c)
	case hbcommand.DeleteHabit:
		return e.deleteHabit(c)
	case hbcommand.LogProgress:
		return e.logProgress(c)
	case hbcommand.ListGoals:
		return &Result{
			Command: c.Kind(),
			Goals:   e.list.Goals(),
		}, false, nil
	case hbcommand.ListHabits:
		g, err := e.list.Goal(c.GoalIndex)
		if err != nil {
			return nil, false, err
		}
		return &Result{
			Command: c.Kind(),
			Goal:    g,
		}, false, nil
	case hbcommand.UpdateGoalName:
		return e.updateGoalName(c)
	case hbcommand.UpdateGoalType:
		return e.updateGoalType(c)
	case hbcommand.UpdateGoalEndDate:
		return e.updateGoalEndDate(c)
	case hbcommand.UpdateHabitName:
		return e.updateHabitName(c)
	case hbcommand.UpdateHabitInterval:
		return e.updateHabitInterval(c)
	case hbcommand.Help:
		return &Result{
			Command: c.Kind(),
			Message: HelpText,
		}, false, nil
	case hbcommand.Exit:
		return &Result{
			Command: c.Kind(),
			Message: "Good luck with your goals!",
			Exit:    true,
		}, false, nil
	default:
		return nil, false, hberror.Newf("no handler for command %s", cmd.Kind()).
			WithCode(hberror.CodeInvalidOperation).
			WithOperation("executor.apply")
	}
}

func (e *Engine) addGoal(c hbcommand.AddGoal) (*Result, bool, error) {
	g := goal.NewGoal(c.Name, c.Type, c.Start, c.End)
	e.list.Add(g)
	return &Result{
		Command: c.Kind(),
		Message: "Your goal: " + g.Name + " has been added to your list",
		Goal:    g,
	}, true, nil
}

func (e *Engine) addHabit(c hbcommand.AddHabit) (*Result, bool, error) {
	g, err := e.list.Goal(c.GoalIndex)
	if err != nil {
		return nil, false, err
	}
	h := goal.NewHabit(c.Name, c.Interval, timex.Today().AddDate(0, 0, c.Interval))
	g.AddHabit(h)
	return &Result{
		Command: c.Kind(),
		Message: "Your habit: " + h.Name + " has been added to the goal: " + g.Name,
		Goal:    g,
	}, true, nil
}

func (e *Engine) deleteGoal(c hbcommand.DeleteGoal) (*Result, bool, error) {
	g, err := e.list.Remove(c.GoalIndex)
	if err != nil {
		return nil, false, err
	}
	return &Result{
		Command: c.Kind(),
		Message: "Your goal: " + g.Name + " has been removed from your list",
	}, true, nil
}

func (e *Engine) deleteHabit(c hbcommand.DeleteHabit) (*Result, bool, error) {
	h, err := e.list.RemoveHabit(c.GoalIndex, c.HabitIndex)
	if err != nil {
		return nil, false, err
	}
	return &Result{
		Command: c.Kind(),
		Message: "Your habit: " + h.Name + " has been removed",
	}, true, nil
}

func (e *Engine) logProgress(c hbcommand.LogProgress) (*Result, bool, error) {
	h, err := e.list.DoneHabit(c.GoalIndex, c.HabitIndex)
	if err != nil {
		return nil, false, err
	}
	message := "Well done, you have completed: " + h.Name
	if h.Interval > 0 {
		message += ". It is next due on " + timex.FormatCompactDate(h.Due)
	}
	return &Result{
		Command: c.Kind(),
		Message: message,
	}, true, nil
}

func (e *Engine) updateGoalName(c hbcommand.UpdateGoalName) (*Result, bool, error) {
	if err := e.list.SetGoalName(c.GoalIndex, c.Name); err != nil {
		return nil, false, err
	}
	return &Result{
		Command: c.Kind(),
		Message: "Your goal name has been changed to: " + c.Name,
	}, true, nil
}

func (e *Engine) updateGoalType(c hbcommand.UpdateGoalType) (*Result, bool, error) {
	if err := e.list.SetGoalType(c.GoalIndex, c.Type); err != nil {
		return nil, false, err
	}
	return &Result{
		Command: c.Kind(),
		Message: "Your goal type has been changed to: " + c.Type.String(),
	}, true, nil
}

func (e *Engine) updateGoalEndDate(c hbcommand.UpdateGoalEndDate) (*Result, bool, error) {
	if err := e.list.SetGoalEndDate(c.GoalIndex, c.End); err != nil {
		return nil, false, err
	}
	return &Result{
		Command: c.Kind(),
		Message: "Your goal end date has been changed to: " + timex.FormatCompactDate(c.End),
	}, true, nil
}

func (e *Engine) updateHabitName(c hbcommand.UpdateHabitName) (*Result, bool, error) {
	if err := e.list.SetHabitName(c.GoalIndex, c.HabitIndex, c.Name); err != nil {
		return nil, false, err
	}
	return &Result{
		Command: c.Kind(),
		Message: "Your habit name has been changed to: " + c.Name,
	}, true, nil
}

func (e *Engine) updateHabitInterval(c hbcommand.UpdateHabitInterval) (*Result, bool, error) {
	if err := e.list.SetHabitInterval(c.GoalIndex, c.HabitIndex, c.Interval); err != nil {
		return nil, false, err
	}
	h, err := e.list.Habit(c.GoalIndex, c.HabitIndex)
	if err != nil {
		return nil, false, err
	}
	return &Result{
		Command: c.Kind(),
		Message: "Your habit interval has been changed. " + h.Name +
			" is next due on " + timex.FormatCompactDate(h.Due),
	}, true, nil
}
