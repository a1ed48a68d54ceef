package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	"github.com/m04kA/SMC-ConsultationService/pkg/types"
)

const (
	keyPrefix        = "schedule:visible:"
	generationPrefix = "schedule:generation:"
)

// Config параметры подключения к Redis
type Config struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// ScheduleCache кэш видимого студентам расписания преподавателя.
// Источник истины всегда БД. Записи хранятся под ключом поколения: мутация расписания
// увеличивает поколение, и значение, прочитанное из БД до мутации, попадает
// в устаревший ключ, который больше никто не читает и который истекает по TTL.
type ScheduleCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewScheduleCache создает кэш и проверяет соединение
func NewScheduleCache(ctx context.Context, cfg Config) (*ScheduleCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: ping %s: %v", ErrUnavailable, cfg.Addr, err)
	}

	return &ScheduleCache{client: client, ttl: cfg.TTL}, nil
}

// GetVisible возвращает блоки текущего поколения; ok=false при промахе.
// Поколение возвращается и при промахе: его передают в SetVisible после чтения из БД.
func (c *ScheduleCache) GetVisible(ctx context.Context, professorID uuid.UUID) ([]*domain.ScheduleBlock, uint64, bool, error) {
	gen, err := c.client.Get(ctx, generationKey(professorID)).Uint64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, 0, false, fmt.Errorf("%w: GetVisible: generation: %v", ErrUnavailable, err)
	}

	raw, err := c.client.Get(ctx, key(professorID, gen)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, gen, false, nil
	}
	if err != nil {
		return nil, 0, false, fmt.Errorf("%w: GetVisible: %v", ErrUnavailable, err)
	}

	blocks, err := decode(raw)
	if err != nil {
		return nil, 0, false, err
	}
	return blocks, gen, true, nil
}

// SetVisible сохраняет видимые блоки преподавателя под поколением gen
func (c *ScheduleCache) SetVisible(ctx context.Context, professorID uuid.UUID, gen uint64, blocks []*domain.ScheduleBlock) error {
	raw, err := encode(blocks)
	if err != nil {
		return err
	}

	if err := c.client.Set(ctx, key(professorID, gen), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: SetVisible: %v", ErrUnavailable, err)
	}
	return nil
}

// Invalidate переводит преподавателя на новое поколение
func (c *ScheduleCache) Invalidate(ctx context.Context, professorID uuid.UUID) error {
	if err := c.client.Incr(ctx, generationKey(professorID)).Err(); err != nil {
		return fmt.Errorf("%w: Invalidate: %v", ErrUnavailable, err)
	}
	return nil
}

// Close закрывает соединение с Redis
func (c *ScheduleCache) Close() error {
	return c.client.Close()
}

func key(professorID uuid.UUID, gen uint64) string {
	return keyPrefix + professorID.String() + ":" + strconv.FormatUint(gen, 10)
}

func generationKey(professorID uuid.UUID) string {
	return generationPrefix + professorID.String()
}

type cachedBlock struct {
	ID                uuid.UUID        `json:"id"`
	ProfessorID       uuid.UUID        `json:"professor_id"`
	Weekday           int              `json:"weekday"`
	StartTime         types.TimeString `json:"start_time"`
	EndTime           types.TimeString `json:"end_time"`
	Type              domain.BlockType `json:"type"`
	Note              *string          `json:"note,omitempty"`
	VisibleToStudents bool             `json:"visible_to_students"`
	CreatedAt         time.Time        `json:"created_at"`
}

func encode(blocks []*domain.ScheduleBlock) ([]byte, error) {
	out := make([]cachedBlock, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, cachedBlock(*b))
	}
	raw, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("%w: encode: %v", ErrDecode, err)
	}
	return raw, nil
}

func decode(raw []byte) ([]*domain.ScheduleBlock, error) {
	var in []cachedBlock
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	blocks := make([]*domain.ScheduleBlock, 0, len(in))
	for _, cb := range in {
		b := domain.ScheduleBlock(cb)
		blocks = append(blocks, &b)
	}
	return blocks, nil
}
