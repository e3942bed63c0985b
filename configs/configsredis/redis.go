package configsredis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"undangan.link/configs/configsapp"
	"undangan.link/configs/configslog"
)

// NewClient senkronizasyon bildirimleri için kullanılan Redis istemcisini kurar.
// Bağlantı doğrulanamazsa nil döner; köprü bu durumda abonelik olmadan çalışır.
func NewClient(cfg configsapp.RedisConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		configslog.Log.Warn("Redis bağlantısı doğrulanamadı, değişiklik bildirimleri devre dışı",
			zap.String("addr", cfg.Addr), zap.Error(err))
		_ = client.Close()
		return nil
	}

	configslog.SLog.Infof("Redis bağlantısı kuruldu (%s)", cfg.Addr)
	return client
}
