package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/harunnryd/karte/internal/app"
	apperrors "github.com/harunnryd/karte/internal/errors"
	"github.com/harunnryd/karte/internal/formatter"
	"github.com/harunnryd/karte/internal/state"

	"github.com/google/shlex"
	"github.com/natefinch/atomic"
)

type REPL struct {
	actions    *app.Actions
	reader     *bufio.Reader
	chatFmt    *formatter.ChatFormatter
	tableFmt   *formatter.TableFormatter
	exportPath string
}

func NewREPL(actions *app.Actions, exportPath string) *REPL {
	return &REPL{
		actions:    actions,
		reader:     bufio.NewReader(os.Stdin),
		chatFmt:    formatter.NewChatFormatter(),
		tableFmt:   formatter.NewTableFormatter(),
		exportPath: exportPath,
	}
}

func (r *REPL) Start(ctx context.Context) error {
	fmt.Println("Karte agent session. Describe an interaction to log it.")
	fmt.Println("Type '/help' for commands, '/exit' to quit.")

	for {
		select {
		case <-ctx.Done():
			return r.finish()
		default:
			if err := r.readLine(ctx); err != nil {
				if err == io.EOF {
					return r.finish()
				}
				fmt.Println(apperrors.Describe(err))
			}
		}
	}
}

func (r *REPL) readLine(ctx context.Context) error {
	fmt.Print("> ")
	text, err := r.reader.ReadString('\n')
	if err != nil {
		return err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	if strings.HasPrefix(text, "/") {
		return r.runCommand(ctx, text)
	}

	return r.send(ctx, text)
}

func (r *REPL) send(ctx context.Context, text string) error {
	reply, logged, err := r.actions.SendChat(ctx, text)
	if err != nil {
		fmt.Println(r.chatFmt.FormatMessage(state.ChatMessage{Role: state.RoleAssistant, Content: app.ChatFallbackMessage}))
		return err
	}

	fmt.Println(r.chatFmt.FormatMessage(reply))
	if logged {
		fmt.Println("✓ Interaction logged — list refreshed.")
	}
	return nil
}

func (r *REPL) runCommand(ctx context.Context, text string) error {
	args, err := shlex.Split(text)
	if err != nil {
		return apperrors.InvalidInput(fmt.Sprintf("parse command: %v", err))
	}
	if len(args) == 0 {
		return nil
	}

	switch args[0] {
	case "/exit", "/quit":
		return io.EOF

	case "/help":
		fmt.Println("Commands:")
		fmt.Println("  /list   show logged interactions")
		fmt.Println("  /draft  show the current draft")
		fmt.Println("  /clear  clear the chat transcript")
		fmt.Println("  /exit   leave the session")
		return nil

	case "/clear":
		r.actions.Store.ClearChat()
		fmt.Println("Transcript cleared.")
		return nil

	case "/draft":
		fmt.Println(r.tableFmt.FormatDraft(r.actions.Store.Draft()))
		return nil

	case "/list":
		if err := r.actions.RefreshInteractions(ctx); err != nil {
			return err
		}
		fmt.Println(r.tableFmt.FormatInteractions(r.actions.Store.Interactions()))
		return nil

	default:
		return apperrors.InvalidInput(fmt.Sprintf("unknown command %s; try /help", args[0]))
	}
}

func (r *REPL) finish() error {
	if r.exportPath == "" {
		return nil
	}
	return exportTranscript(r.exportPath, r.actions.Store.Transcript())
}

func exportTranscript(path string, transcript []state.ChatMessage) error {
	type turn struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}

	turns := make([]turn, 0, len(transcript))
	for _, msg := range transcript {
		turns = append(turns, turn{Role: string(msg.Role), Content: msg.Content})
	}

	encoded, err := json.MarshalIndent(turns, "", "  ")
	if err != nil {
		return fmt.Errorf("encode transcript: %w", err)
	}

	if err := atomic.WriteFile(path, bytes.NewReader(encoded)); err != nil {
		return fmt.Errorf("write transcript to %s: %w", path, err)
	}

	fmt.Printf("Transcript written to %s\n", path)
	return nil
}
