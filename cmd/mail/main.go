package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"text/template"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wneessen/go-mail"

	"github.com/slab-org/slab-gangnam4/internal/config"
	"github.com/slab-org/slab-gangnam4/internal/domain"
)

// 점장에게 보내는 알림 본문. 메신저가 아니라 메일이므로 보고 양식과는
// 별개의 간단한 양식을 쓴다.
const handoverMailBody = `새 인수인계 메모가 등록되었습니다.

작성자: {{.Author}}
날짜: {{.Date}}

{{.Content}}
`

func main() {
	/**********************************************
	 * logger 생성
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	/**********************************************
	 * 설정 로드
	 **********************************************/
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("설정을 불러올 수 없습니다", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * 메일 클라이언트 생성
	 **********************************************/
	client, err := mail.NewClient(cfg.Email.SMTP.Host,
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithSSL(),
		mail.WithPort(cfg.Email.SMTP.Port),
		mail.WithUsername(cfg.Email.SMTP.Username),
		mail.WithPassword(cfg.Email.SMTP.Password),
	)
	if err != nil {
		logger.Error("메일 클라이언트를 만들 수 없습니다", slog.String("error", err.Error()))
		return
	}
	defer client.Close()

	// 기동 시점에 연결이 되는지 확인한다
	clientDialCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Email.SMTP.DialTimeout)*time.Second)
	defer cancel()
	if err := client.DialWithContext(clientDialCtx); err != nil {
		logger.Error("메일 서버에 연결할 수 없습니다", slog.String("error", err.Error()))
		return
	}

	bodyTmpl := template.Must(template.New("handover").Parse(handoverMailBody))

	/**********************************************
	 * RabbitMQ 연결
	 **********************************************/
	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("RabbitMQ 에 연결할 수 없습니다", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Error("채널을 열 수 없습니다", slog.String("error", err.Error()))
		return
	}
	defer ch.Close()

	q, err := ch.QueueDeclare(
		"handover_queue", // 큐 이름
		true,             // 내구성
		false,            // 소비자가 없어도 큐를 지우지 않는다
		false,            // 독점 아님
		false,            // 선언 결과를 기다린다
		nil,
	)
	if err != nil {
		logger.Error("큐를 선언할 수 없습니다", slog.String("error", err.Error()))
		return
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	msgs, err := ch.Consume(
		q.Name,
		"",    // 소비자 태그는 RabbitMQ 가 정한다
		false, // 수동 ack
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		logger.Error("메시지를 소비할 수 없습니다", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	wg := sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-msgs:
				logger.Info("메시지 수신", slog.String("message", string(msg.Body)))

				mailMessage := domain.MailMessage{}
				if err := json.Unmarshal(msg.Body, &mailMessage); err != nil {
					logger.Error("메시지 역직렬화 실패", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				m := mail.NewMsg()
				if err := m.From(cfg.Email.SMTP.Username); err != nil {
					logger.Error("발신자를 설정할 수 없습니다", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}
				if err := m.To(mailMessage.To); err != nil {
					logger.Error("수신자를 설정할 수 없습니다", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				switch mailMessage.Type {
				case "handover_created":
					// Data 는 map 으로 디코딩되므로 구조체로 다시 맞춘다
					raw, err := json.Marshal(mailMessage.Data)
					if err != nil {
						logger.Error("메모 데이터 직렬화 실패", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					data := domain.HandoverMailData{}
					if err := json.Unmarshal(raw, &data); err != nil {
						logger.Error("메모 데이터 역직렬화 실패", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					if err := m.SetBodyTextTemplate(bodyTmpl, data); err != nil {
						logger.Error("본문을 설정할 수 없습니다", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					m.Subject("강남4호점 - 인수인계 메모 (" + data.Date + ")")
				default:
					logger.Error("지원하지 않는 메일 유형", slog.String("type", mailMessage.Type))
					_ = msg.Nack(false, false)
					continue
				}

				if err := client.DialAndSend(m); err != nil {
					logger.Error("메일 발송 실패", slog.String("error", err.Error()))
					_ = msg.Nack(false, true) // 재시도를 위해 다시 큐에 넣는다
					continue
				}

				_ = msg.Ack(false)
			}
		}
	}()

	logger.Info("메시지를 기다립니다... (CTRL+C 로 종료)")
	<-sigChan

	slog.Info("mail worker 를 종료하는 중입니다...")
	cancel()
	wg.Wait()
	slog.Info("mail worker 가 정상적으로 종료되었습니다")
}
