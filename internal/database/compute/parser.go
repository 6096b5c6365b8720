package compute

import (
	"errors"
	"fmt"
	"go.uber.org/zap"
	"multimapdb/internal/database/storage/engine"
	"regexp"
	"strings"
)

// A token is either a double-quoted run, which may contain spaces, or a run of non-space characters.
var tokenPattern = regexp.MustCompile(`"[^"]+"|\S+`)

type QueryParser struct {
	logger *zap.Logger
}

func NewQueryParser(logger *zap.Logger) (*QueryParser, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &QueryParser{logger: logger}, nil
}

func (p *QueryParser) ParseQuery(queryString string) (Query, error) {
	p.logger.Debug("parsing query", zap.String("query", queryString))

	tokens := tokenize(queryString)

	if len(tokens) == 0 {
		p.logger.Debug("no tokens found", zap.String("query", queryString))
		return Query{}, engine.NewError(engine.ErrInvalidArgument, "no tokens found")
	}

	commandToken := tokens[0]
	commandSettings, err := parseCommandSettings(commandToken)
	if err != nil {
		p.logger.Debug("error parsing settings", zap.String("query", queryString), zap.Error(err))
		return Query{}, err
	}

	query, err := mapQuery(tokens[1:], commandSettings)
	if err != nil {
		p.logger.Debug("error parsing query", zap.String("query", queryString), zap.Error(err))
		return Query{}, err
	}
	return query, nil
}

func (p *QueryParser) CleanQuery(queryString string) string {
	return strings.TrimRight(queryString, "\r\n")
}

func tokenize(queryString string) []string {
	tokens := tokenPattern.FindAllString(queryString, -1)
	for i, token := range tokens {
		tokens[i] = strings.Trim(token, `"`)
	}
	return tokens
}

func parseCommandSettings(token string) (CommandSettings, error) {
	if setting, exists := commandSettings[strings.ToLower(token)]; exists {
		return setting, nil
	}
	return CommandSettings{}, engine.NewError(engine.ErrInvalidArgument, fmt.Sprintf("invalid command token: %s", token))
}

func mapQuery(args []string, settings CommandSettings) (Query, error) {
	if len(args) != settings.argCount {
		return Query{}, engine.NewError(engine.ErrInvalidArgument, "invalid count of arguments")
	}
	return Query{CommandId: settings.id, Args: args}, nil
}
