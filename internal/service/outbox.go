package service

import (
	"context"
	"time"

	"Club_Manager/internal/model"
	"Club_Manager/internal/pkg"
	"Club_Manager/internal/repository/mysql"
)

var paymentProducer *pkg.KafkaProducer

// InitPaymentProducer kafka 没配的话不调用即可，发送全部跳过
func InitPaymentProducer(cfg pkg.KafkaConfig) error {
	p, err := pkg.NewKafkaProducer(cfg)
	if err != nil {
		return err
	}
	paymentProducer = p
	return nil
}

func ClosePaymentProducer() error {
	if paymentProducer == nil {
		return nil
	}
	return paymentProducer.Close()
}

// publishPaymentEvent 提交后尽力而为地投递流水事件；
// 失败只记日志，流水本身以数据库为准，outbox 行留在 pending
func publishPaymentEvent(ob *model.PaymentOutbox) {
	if paymentProducer == nil || ob == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := paymentProducer.Send(ctx, pkg.MakeKeyFromID(ob.ClubID), []byte(ob.Payload)); err != nil {
		pkg.Log.Warnf("publish payment event %d: %v", ob.ID, err)
		return
	}
	pRepo := &mysql.PaymentRepository{DB: mysql.DB}
	if err := pRepo.MarkOutboxSent(ob.ID); err != nil {
		pkg.Log.Warnf("mark outbox %d sent: %v", ob.ID, err)
	}
}
