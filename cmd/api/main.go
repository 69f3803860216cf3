package main

import (
	"Club_Manager/internal/config"
	"Club_Manager/internal/model"
	"Club_Manager/internal/pkg"
	"Club_Manager/internal/repository/mysql"
	"Club_Manager/internal/repository/redis"
	"Club_Manager/internal/router"
	"Club_Manager/internal/service"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Get()
	if err != nil {
		panic(err)
	}
	if err := pkg.InitLogger(cfg.Debug); err != nil {
		panic(err)
	}

	pkg.AccessSecret = []byte(cfg.AccessSecret)
	pkg.RefreshSecret = []byte(cfg.RefreshSecret)

	if err := mysql.InitDB(cfg.MySQLDSN); err != nil {
		panic(err)
	}

	// 连接redis
	if err := redis.Init(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); err != nil {
		panic(err)
	}
	defer redis.Close()

	// 自动建表（开发阶段 OK）
	if err := mysql.DB.AutoMigrate(
		&model.User{},
		&model.Club{},
		&model.Membership{},
		&model.Event{},
		&model.Attendance{},
		&model.EventPayment{},
		&model.Payment{},
		&model.PaymentOutbox{},
		&model.Finance{},
		&model.Schedule{},
		&model.MonthlyContribution{},
	); err != nil {
		panic(err)
	}

	if err := seedAdmin(); err != nil {
		panic(err)
	}

	// kafka 没配 broker 就不起 producer，流水只落 outbox 表
	if len(cfg.Kafka.Brokers) > 0 {
		if err := service.InitPaymentProducer(cfg.Kafka); err != nil {
			panic(err)
		}
		defer service.ClosePaymentProducer()
	}

	// Gin
	r := router.InitRouter(cfg)
	if err := r.Run(cfg.Addr); err != nil {
		pkg.Log.Errorf("server exited: %v", err)
	}
}

// seedAdmin 保证系统至少有一个管理员账号
func seedAdmin() error {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := model.User{
		Name:     "Admin",
		Email:    "admin@example.com",
		Password: string(hash),
		Role:     model.RoleAdmin,
	}
	return mysql.DB.Where(model.User{Email: admin.Email}).FirstOrCreate(&admin).Error
}
