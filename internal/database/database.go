package database

import (
	"errors"
	"fmt"
	"multimapdb/internal/database/compute"
	"multimapdb/internal/database/storage/engine"
	"strings"

	"github.com/facette/natsort"
	"go.uber.org/zap"
)

type PreProcessor interface {
	CleanQuery(queryString string) string
	ParseQuery(queryString string) (compute.Query, error)
}

type handler func(args []string) (string, error)

type Database struct {
	logger       *zap.Logger
	preProcessor PreProcessor
	engine       engine.Engine
	sortOutput   bool
	handlers     map[compute.CommandId]handler
}

func NewDatabase(
	logger *zap.Logger,
	preProcessor PreProcessor,
	engine engine.Engine,
	sortOutput bool,
) (*Database, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if preProcessor == nil {
		return nil, errors.New("pre-processor cannot be nil")
	}
	if engine == nil {
		return nil, errors.New("engine cannot be nil")
	}

	db := &Database{
		logger:       logger,
		preProcessor: preProcessor,
		engine:       engine,
		sortOutput:   sortOutput,
	}

	db.handlers = map[compute.CommandId]handler{
		compute.KeysCommandId:         db.keys,
		compute.MembersCommandId:      db.members,
		compute.AddCommandId:          db.add,
		compute.RemoveCommandId:       db.remove,
		compute.RemoveAllCommandId:    db.removeAll,
		compute.ClearCommandId:        db.clear,
		compute.KeyExistsCommandId:    db.keyExists,
		compute.MemberExistsCommandId: db.memberExists,
		compute.AllMembersCommandId:   db.allMembers,
		compute.ItemsCommandId:        db.items,
		compute.UnionCommandId:        db.union,
		compute.ExceptCommandId:       db.except,
		compute.HelpCommandId:         db.help,
	}

	return db, nil
}

// Execute runs a single query line and renders its response.
// On failure the response is the rendered error and err is the cause.
func (d *Database) Execute(queryString string) (string, error) {
	cleaned := d.preProcessor.CleanQuery(queryString)

	query, err := d.preProcessor.ParseQuery(cleaned)
	if err != nil {
		return fmt.Sprintf(ErrorResult, err), err
	}

	h, exists := d.handlers[query.CommandId]
	if !exists {
		err := fmt.Errorf("unknown command: %v", query.CommandId)
		return fmt.Sprintf(ErrorResult, err), err
	}

	response, err := h(query.Args)
	if err != nil {
		d.logger.Debug("command failed",
			zap.String("query", cleaned),
			zap.Error(err),
		)
		return fmt.Sprintf(ErrorResult, err), err
	}

	return response, nil
}

// Size returns the number of keys in the store.
func (d *Database) Size() int {
	return d.engine.Count()
}

func (d *Database) keys(_ []string) (string, error) {
	return d.list(d.engine.Keys()), nil
}

func (d *Database) members(args []string) (string, error) {
	members, err := d.engine.Members(args[0])
	if err != nil {
		return "", err
	}
	return d.list(members), nil
}

func (d *Database) add(args []string) (string, error) {
	if err := d.engine.Add(args[0], args[1]); err != nil {
		return "", err
	}
	return AddedResult, nil
}

func (d *Database) remove(args []string) (string, error) {
	if err := d.engine.Remove(args[0], args[1]); err != nil {
		return "", err
	}
	return RemovedResult, nil
}

func (d *Database) removeAll(args []string) (string, error) {
	if err := d.engine.RemoveAll(args[0]); err != nil {
		return "", err
	}
	return RemovedResult, nil
}

func (d *Database) clear(_ []string) (string, error) {
	d.engine.Clear()
	return ClearedResult, nil
}

func (d *Database) keyExists(args []string) (string, error) {
	return boolResult(d.engine.KeyExists(args[0])), nil
}

func (d *Database) memberExists(args []string) (string, error) {
	exists, err := d.engine.MemberExists(args[0], args[1])
	if err != nil {
		return "", err
	}
	return boolResult(exists), nil
}

func (d *Database) allMembers(_ []string) (string, error) {
	return d.list(d.engine.AllMembers()), nil
}

func (d *Database) items(_ []string) (string, error) {
	items := d.engine.Items()

	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf(ItemResult, item.Key, item.Member))
	}
	return d.list(lines), nil
}

func (d *Database) union(args []string) (string, error) {
	members, err := d.engine.Union(args[0], args[1])
	if err != nil {
		return "", err
	}
	return d.list(members), nil
}

func (d *Database) except(args []string) (string, error) {
	members, err := d.engine.Except(args[0], args[1])
	if err != nil {
		return "", err
	}
	return d.list(members), nil
}

func (d *Database) help(_ []string) (string, error) {
	var sb strings.Builder
	for _, info := range compute.Commands() {
		sb.WriteString(fmt.Sprintf(HelpItemResult, info.Name, info.Usage, info.Description))
	}
	return sb.String(), nil
}

func (d *Database) list(values []string) string {
	if len(values) == 0 {
		return EmptySet
	}

	if d.sortOutput {
		natsort.Sort(values)
	}

	var sb strings.Builder
	for i, value := range values {
		sb.WriteString(fmt.Sprintf(ListItemResult, i+1, value))
	}
	return sb.String()
}

func boolResult(value bool) string {
	if value {
		return TrueResult
	}
	return FalseResult
}
