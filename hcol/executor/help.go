// File: help.go
// Title: Command Reference Text
// Description: The text shown by the help command. One line per command
//              format, grouped by what the command operates on.
// Version: v0.1.0
// Created: 2025-08-31

package executor

// HelpText is the command reference shown by the help command
const HelpText = `Commands:
  set n/NAME [t/TYPE] [s/DDMMYYYY] e/DDMMYYYY   add a goal
  habit g/GOAL n/NAME i/INTERVAL                add a habit to a goal
  done g/GOAL h/HABIT                           mark a habit done for today
  list                                          list all goals
  view g/GOAL                                   list the habits of a goal
  update g/GOAL n/NAME                          rename a goal
  update g/GOAL t/TYPE                          change a goal's type
  update g/GOAL e/DDMMYYYY                      move a goal's end date
  change g/GOAL h/HABIT n/NAME                  rename a habit
  change g/GOAL h/HABIT i/INTERVAL              change a habit's interval
  remove g/GOAL                                 delete a goal
  delete g/GOAL h/HABIT                         delete a habit
  help                                          show this reference
  exit                                          end the session

Goal types: sl (sleep), fd (food), ex (exercise), sd (study), df (default).
Dates use the format DDMMYYYY. Indices are one-based as shown by list and view.`
