package creator

import (
	"multimapdb/internal/config"
	"multimapdb/internal/console"
	"multimapdb/internal/database"
	"multimapdb/internal/database/compute"
	"multimapdb/internal/database/storage/engine"
	"multimapdb/internal/database/storage/engine/mem"
	"multimapdb/internal/database/storage/engine/partition"

	"go.uber.org/zap"
)

type Creator struct {
	logger *zap.Logger
	conf   *config.AppConfig
}

func NewCreator(logger *zap.Logger, conf *config.AppConfig) *Creator {
	return &Creator{
		logger: logger,
		conf:   conf,
	}
}

func (c *Creator) CreateEngine() engine.Engine {
	conf := c.conf.EngineConfig

	if conf.PartitionsCount > 1 {
		partitions := make([]engine.Engine, 0, conf.PartitionsCount)
		for i := 0; i < conf.PartitionsCount; i++ {
			partitions = append(partitions, mem.NewInMemoryEngine(conf.StartSize/conf.PartitionsCount))
		}
		c.logger.Debug("using partitioned engine", zap.Int("partitions", conf.PartitionsCount))
		return partition.NewPartitionedEngine(partitions)
	}

	return mem.NewInMemoryEngine(conf.StartSize)
}

func (c *Creator) CreateDatabase() (*database.Database, error) {
	parser, err := compute.NewQueryParser(c.logger)
	if err != nil {
		return nil, err
	}

	return database.NewDatabase(c.logger, parser, c.CreateEngine(), !c.conf.ConsoleConfig.UnsortedOutput)
}

func (c *Creator) CreateConsole(db *database.Database) (*console.Console, error) {
	return console.NewConsole(c.logger, &c.conf.ConsoleConfig, db)
}
