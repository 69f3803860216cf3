package pkg

import (
	"crypto/tls"
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string // 发件人邮箱
	Password string // 授权码/密码
	From     string // 显示的发件人，可与 Username 相同
}

func SendEmail(cfg SMTPConfig, to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	return d.DialAndSend(m)
}

// ContributionNoticeHTML 月度会费提醒邮件正文
func ContributionNoticeHTML(clubName, month string, amount float64) string {
	return fmt.Sprintf(`<p>您好，</p><p>俱乐部 <b>%s</b> 已生成 <b>%s</b> 月度会费，金额：<b style="font-size:18px;">%.2f</b>。</p><p>请及时缴纳。</p>`, clubName, month, amount)
}
