package redis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type IRedis interface {
	SetLastActivity(ctx context.Context, chatID string, at time.Time) error
	GetLastActivity(ctx context.Context, chatID string) (time.Time, error)
	IncrSuspicionCount(ctx context.Context, chatID string) (int64, error)
	ResetSuspicionCount(ctx context.Context, chatID string) error
}

type redisClient struct {
	client *redis.Client
}

func New() IRedis {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &redisClient{client: client}
}

func activityKey(chatID string) string {
	return fmt.Sprintf("chat:activity:%s", chatID)
}

func suspicionKey(chatID string) string {
	return fmt.Sprintf("chat:suspicion:%s", chatID)
}

func (r *redisClient) SetLastActivity(ctx context.Context, chatID string, at time.Time) error {
	err := r.client.Set(ctx, activityKey(chatID), at.UnixMilli(), 24*time.Hour).Err()
	if err != nil {
		logrus.Error(fmt.Sprintf("Error setting last activity for chat %s: %v", chatID, err))
		return err
	}
	return nil
}

func (r *redisClient) GetLastActivity(ctx context.Context, chatID string) (time.Time, error) {
	val, err := r.client.Get(ctx, activityKey(chatID)).Result()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, err
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error getting last activity for chat %s: %v", chatID, err))
		return time.Time{}, err
	}

	ms, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return time.Time{}, err
	}

	return time.UnixMilli(ms), nil
}

func (r *redisClient) IncrSuspicionCount(ctx context.Context, chatID string) (int64, error) {
	count, err := r.client.Incr(ctx, suspicionKey(chatID)).Result()
	if err != nil {
		logrus.Error(fmt.Sprintf("Error incrementing suspicion count for chat %s: %v", chatID, err))
		return 0, err
	}

	r.client.Expire(ctx, suspicionKey(chatID), 7*24*time.Hour)

	return count, nil
}

func (r *redisClient) ResetSuspicionCount(ctx context.Context, chatID string) error {
	_, err := r.client.Del(ctx, suspicionKey(chatID)).Result()
	if err != nil {
		logrus.Error(fmt.Sprintf("Error resetting suspicion count for chat %s: %v", chatID, err))
		return err
	}
	return nil
}
