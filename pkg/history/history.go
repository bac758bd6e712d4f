// Package history persists every command line the host executes, together
// with the outcome it produced, in a local SQLite database.
package history

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/logger"
	"github.com/RoynerS/Gestor-inteligente-de-archivos/pkg/result"
)

// DefaultPath 未配置时的数据库位置
const DefaultPath = "~/.gestor-archivos/history.db"

type Entry struct {
	ID        string    `gorm:"primaryKey;size:36" yaml:"id"`
	Line      string    `gorm:"not null" yaml:"line"`
	Command   string    `gorm:"index;not null" yaml:"command"`
	Status    string    `gorm:"not null" yaml:"status"`
	Class     string    `yaml:"class,omitempty"`
	Message   string    `yaml:"message"`
	CreatedAt time.Time `gorm:"index;not null" yaml:"created_at"`
}

func (Entry) TableName() string {
	return "command_history"
}

// Outcome 将保存的状态和分类还原为 Result
func (e Entry) Outcome() result.Result {
	return result.Result{
		Status:  result.ParseStatus(e.Status),
		Class:   result.Class(e.Class),
		Message: e.Message,
	}
}

type Store struct {
	db *gorm.DB
}

func Open(dbPath string) (*Store, error) {
	expandedPath, err := expandPath(dbPath)
	if err != nil {
		logger.Get().Error().Err(err).Msg("扩展数据库路径失败")
		return nil, err
	}

	logger.Get().Debug().Msgf("打开历史数据库，路径: %s", expandedPath)

	if err := os.MkdirAll(filepath.Dir(expandedPath), 0755); err != nil {
		logger.Get().Error().Err(err).Msgf("创建数据库目录失败: %s", filepath.Dir(expandedPath))
		return nil, err
	}

	dsn := expandedPath + "?_journal_mode=WAL&_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		logger.Get().Error().Err(err).Msg("打开数据库连接失败")
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Get().Error().Err(err).Msg("获取数据库连接失败")
		return nil, err
	}

	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := db.AutoMigrate(&Entry{}); err != nil {
		logger.Get().Error().Err(err).Msg("创建数据库表失败")
		_ = sqlDB.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func expandPath(path string) (string, error) {
	if len(path) >= 2 && path[0] == '~' && (path[1] == '/' || path[1] == '\\') {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}

// Record 保存一条已执行的命令行及其结果
func (s *Store) Record(line string, res result.Result) (*Entry, error) {
	entry := &Entry{
		ID:        uuid.NewString(),
		Line:      line,
		Command:   verb(line),
		Status:    res.Status.String(),
		Class:     string(res.Class),
		Message:   res.Message,
		CreatedAt: time.Now(),
	}

	if err := s.db.Create(entry).Error; err != nil {
		logger.Get().Error().Err(err).Msgf("写入历史记录失败: %s", line)
		return nil, err
	}

	logger.Get().Trace().Str("id", entry.ID).Str("command", entry.Command).Msg("历史记录已写入")
	return entry, nil
}

// Recent 返回最近的 limit 条记录，最新的在前；limit <= 0 表示全部
func (s *Store) Recent(limit int) ([]Entry, error) {
	var entries []Entry
	q := s.db.Order("created_at DESC").Order("rowid DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&entries).Error; err != nil {
		logger.Get().Error().Err(err).Msg("读取历史记录失败")
		return nil, err
	}
	return entries, nil
}

func (s *Store) Count() (int64, error) {
	var count int64
	err := s.db.Model(&Entry{}).Count(&count).Error
	return count, err
}

// Clear 删除全部记录，返回删除的条数
func (s *Store) Clear() (int64, error) {
	tx := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&Entry{})
	if tx.Error != nil {
		logger.Get().Error().Err(tx.Error).Msg("清空历史记录失败")
		return 0, tx.Error
	}
	logger.Get().Info().Int64("count", tx.RowsAffected).Msg("历史记录已清空")
	return tx.RowsAffected, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		logger.Get().Error().Err(err).Msg("获取数据库连接失败")
		return err
	}
	return sqlDB.Close()
}

func verb(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(strings.Trim(fields[0], `"`))
}
