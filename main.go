package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"moncal/src-cal/calendar"
	"moncal/src-cal/event"
	"moncal/src-cal/handler"
	"moncal/src-cal/metric"
	"moncal/src-cal/model"
	"moncal/src-cal/store"
	"moncal/src-cal/utils"
	"moncal/src-cal/view"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	if err := godotenv.Load(); err != nil {
		slog.Info(err.Error())
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.RFC1123Z,
		}),
	))
}

func main() {
	as := utils.NewAppState()

	if err := model.CreateSchema(as.BunDB); err != nil {
		slog.Error("can't create database schema", "error", err)
		os.Exit(1)
	}

	go metric.Init(as)

	// metrics endpoint
	go func() {
		muxer := http.NewServeMux()
		muxer.Handle("GET /metrics", promhttp.Handler())
		if err := http.ListenAndServe(":"+as.Config.GetPort(), muxer); err != nil {
			slog.Error("cannot start HTTP server", "error", err)
			as.AppCloseSignalChan <- syscall.SIGTERM
		}
	}()

	env := handler.Env{
		Events: event.NewStore(&store.Bun{
			DB:        as.BunDB,
			ReadChan:  as.MetricChans.StoreRead,
			WriteChan: as.MetricChans.StoreWrite,
		}),
		Accent: as.Config.GetAccentColor(),
		When:   as.When,
	}
	go runLoop(as, env)

	slog.Info("app is now running, press Ctrl+C to exit")

	signal.Notify(as.AppCloseSignalChan, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-as.AppCloseSignalChan
	as.GracefulShutdown()

	slog.Info("Gracefully shutting down...")
}

// runLoop owns the month anchor and the modal session, feeds intents into
// the handlers, and re-renders after every state change.
func runLoop(as *utils.AppState, env handler.Env) {
	ctx := context.Background()
	loc := as.Config.GetLocation()
	anchor := calendar.StartOfMonth(time.Now().In(loc))
	session := &handler.Session{}

	render := func() {
		fmt.Println(view.Month(anchor, env.Events.Load(ctx), time.Now().In(loc)))
	}
	render()

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		cmd, rest, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		switch cmd {
		case "":
			render()

		case "prev":
			anchor = calendar.Navigate(anchor, calendar.NavPrev, time.Now().In(loc))
			render()
		case "next":
			anchor = calendar.Navigate(anchor, calendar.NavNext, time.Now().In(loc))
			render()
		case "today":
			anchor = calendar.Navigate(anchor, calendar.NavToday, time.Now().In(loc))
			render()

		case "add":
			dateKey := strings.TrimSpace(rest)
			if dateKey == "" {
				// viewing the current month defaults to today, any other
				// month defaults to its first day
				now := time.Now().In(loc)
				if calendar.DateKey(calendar.StartOfMonth(now)) == calendar.DateKey(anchor) {
					dateKey = calendar.DateKey(now)
				} else {
					dateKey = calendar.DateKey(anchor)
				}
			}
			session.OpenCreate(dateKey)
			fmt.Println("new event on " + dateKey + "; set title <text>, then submit")

		case "edit":
			ev, ok := findByIDPrefix(env.Events.Load(ctx), strings.TrimSpace(rest))
			if !ok {
				fmt.Println("no such event")
				break
			}
			session.OpenEdit(ev)
			fmt.Println("editing " + ev.ID + " (" + ev.Title + "); set <field> <value>, submit, del, or cancel")

		case "set":
			if session.State == handler.Closed {
				fmt.Println("nothing open; use add or edit first")
				break
			}
			field, value, _ := strings.Cut(rest, " ")
			switch field {
			case "title":
				session.Draft.Title = value
			case "date":
				session.Draft.Date = strings.TrimSpace(value)
			case "start":
				session.Draft.Start = strings.TrimSpace(value)
			case "end":
				session.Draft.End = strings.TrimSpace(value)
			case "color":
				session.Draft.Color = strings.TrimSpace(value)
			case "desc":
				session.Draft.Desc = value
			default:
				fmt.Println("fields: title date start end color desc")
			}

		case "submit":
			if session.State == handler.Closed {
				fmt.Println("nothing open; use add or edit first")
				break
			}
			ev, err := handler.Submit(ctx, env, session, session.Draft)
			if err != nil {
				// transient message; the session stays open with its values
				fmt.Println(err.Error())
				break
			}
			fmt.Println("saved " + ev.ID)
			render()

		case "cancel":
			session.Close()

		case "del":
			if session.State != handler.EditPending {
				fmt.Println("open an event with edit first")
				break
			}
			if err := handler.Delete(ctx, env, session); err != nil {
				fmt.Println(err.Error())
				break
			}
			fmt.Println("event deleted")
			render()

		case "move":
			id, dateKey, _ := strings.Cut(strings.TrimSpace(rest), " ")
			ev, ok := findByIDPrefix(env.Events.Load(ctx), id)
			if ok {
				id = ev.ID
			}
			if err := handler.Move(ctx, env, id, strings.TrimSpace(dateKey)); err != nil {
				fmt.Println(err.Error())
				break
			}
			render()

		case "quick":
			ev, err := handler.QuickAdd(ctx, env, rest, time.Now().In(loc))
			if err != nil {
				fmt.Println(err.Error())
				break
			}
			fmt.Println("saved " + ev.ID)
			render()

		case "quit":
			as.AppCloseSignalChan <- syscall.SIGTERM
			return

		default:
			fmt.Println("commands: prev next today add [date] edit <id> set <field> <value> submit cancel del move <id> <date> quick <text> quit")
		}
		fmt.Print("> ")
	}
}

func findByIDPrefix(events []event.Event, prefix string) (event.Event, bool) {
	if prefix == "" {
		return event.Event{}, false
	}
	for _, ev := range events {
		if strings.HasPrefix(ev.ID, prefix) {
			return ev, true
		}
	}
	return event.Event{}, false
}
