package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"multimapdb/internal/config"
	"strings"

	"go.uber.org/zap"
)

const (
	Greeting = "Press Ctrl-C to quit. Type help for a list of commands."

	initialBufferSize = 1024
)

var exitCommands = map[string]struct{}{
	"exit": {},
	"quit": {},
}

type Executor interface {
	Execute(queryString string) (string, error)
}

// Console is an interactive read loop feeding one query per line to an Executor.
type Console struct {
	logger      *zap.Logger
	executor    Executor
	prompt      string
	maxLineSize int
}

func NewConsole(logger *zap.Logger, conf *config.ConsoleConfig, executor Executor) (*Console, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if executor == nil {
		return nil, errors.New("executor cannot be nil")
	}

	maxLineSize, err := config.ParseSizeInBytes(conf.MaxLineSize)
	if err != nil {
		return nil, err
	}

	return &Console{
		logger:      logger,
		executor:    executor,
		prompt:      conf.Prompt,
		maxLineSize: int(maxLineSize),
	}, nil
}

// Run reads queries from in until EOF, an exit command or ctx cancellation.
func (c *Console) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, min(initialBufferSize, c.maxLineSize)), c.maxLineSize)

	c.logger.Debug("console started")
	defer c.logger.Debug("console stopped")

	c.write(out, Greeting+"\n")

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		c.write(out, c.prompt)

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("cannot read query: %w", err)
			}
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if _, exists := exitCommands[strings.ToLower(line)]; exists {
			return nil
		}

		response, err := c.executor.Execute(line)
		if err != nil {
			c.logger.Debug("cannot execute query",
				zap.String("query", line),
				zap.Error(err),
			)
		}

		if !strings.HasSuffix(response, "\n") {
			response += "\n"
		}
		c.write(out, response)
	}
}

func (c *Console) write(out io.Writer, s string) {
	if _, err := io.WriteString(out, s); err != nil {
		c.logger.Error("failed to write response",
			zap.String("response", s),
			zap.Error(err),
		)
	}
}
