package services

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"undangan.link/configs/configslog"
)

// IChangeNotifier bir uzak tablodaki insert/update/delete bildirimlerine
// abonelik sağlar. Kanala düşen her sinyal "bu tablo değişti, yeniden
// çek" anlamına gelir; payload ayrıştırılmaz.
type IChangeNotifier interface {
	Subscribe(ctx context.Context, table string) (<-chan struct{}, error)
}

// RedisNotifier IChangeNotifier arayüzünü Redis pub/sub üzerinde uygular.
// Kanal adı "sync:<tablo>" kalıbındadır; yayıncı taraf (hosted backend
// trigger'ı) her değişiklikte bu kanala mesaj basar.
type RedisNotifier struct {
	client *redis.Client
}

// NewRedisNotifier yeni bir RedisNotifier örneği oluşturur.
func NewRedisNotifier(client *redis.Client) *RedisNotifier {
	return &RedisNotifier{client: client}
}

// Subscribe tabloya abone olur. Dönen kanal, context iptal edildiğinde
// kapatılır; arka arkaya gelen bildirimler tek sinyale katlanır.
func (n *RedisNotifier) Subscribe(ctx context.Context, table string) (<-chan struct{}, error) {
	pubsub := n.client.Subscribe(ctx, "sync:"+table)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, err
	}

	out := make(chan struct{}, 1)
	go func() {
		defer close(out)
		defer func() {
			if err := pubsub.Close(); err != nil {
				configslog.Log.Warn("Pub/sub aboneliği kapatılamadı",
					zap.String("table", table), zap.Error(err))
			}
		}()

		msgs := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-msgs:
				if !ok {
					return
				}
				select {
				case out <- struct{}{}:
				default: // zaten bekleyen sinyal var
				}
			}
		}
	}()
	return out, nil
}

var _ IChangeNotifier = (*RedisNotifier)(nil)
