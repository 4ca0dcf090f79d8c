package main

import (
	"bytes"
	"context"
	"encoding/json"
	"html/template"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wneessen/go-mail"

	"github.com/OldAlexhub/AI-Schedule-Recommender/internal/config"
	"github.com/OldAlexhub/AI-Schedule-Recommender/internal/domain"
	"github.com/OldAlexhub/AI-Schedule-Recommender/internal/export"
)

// rosterEmailView is the template payload: everything preformatted so the
// template stays free of time arithmetic.
type rosterEmailView struct {
	PlanName  string
	DayDate   string
	Employees []rosterEmailRow
	ShortFall int
}

type rosterEmailRow struct {
	ID         int
	Type       string
	Start      string
	End        string
	LunchStart string
	LunchEnd   string
	Hours      int
}

func buildRosterView(data *domain.RosterMailData) *rosterEmailView {
	view := &rosterEmailView{
		PlanName: data.PlanName,
		DayDate:  data.DayDate,
	}
	for _, s := range data.Artifacts.Result.Shortage {
		view.ShortFall += s
	}
	for _, entry := range data.Artifacts.Roster {
		view.Employees = append(view.Employees, rosterEmailRow{
			ID:         entry.EmployeeID,
			Type:       string(entry.Type),
			Start:      export.ClockHour(entry.Start),
			End:        export.ClockHour(entry.End),
			LunchStart: export.ClockMinutes(entry.LunchStart),
			LunchEnd:   export.ClockMinutes(entry.LunchEnd),
			Hours:      entry.Hours,
		})
	}
	return view
}

func main() {
	/**********************************************
	 * logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	/**********************************************
	 * configuration
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("unable to load configuration", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * mail client
	 **********************************************/
	client, err := mail.NewClient(cfg.Email.SMTP.Host,
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithSSL(),
		mail.WithPort(cfg.Email.SMTP.Port),
		mail.WithUsername(cfg.Email.SMTP.Username),
		mail.WithPassword(cfg.Email.SMTP.Password),
	)
	if err != nil {
		logger.Error("unable to create the mail client", slog.String("error", err.Error()))
		return
	}
	defer client.Close()

	clientDialCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Email.SMTP.DialTimeout)*time.Second)
	defer cancel()
	if err := client.DialWithContext(clientDialCtx); err != nil {
		logger.Error("unable to reach the mail server", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * rabbitmq
	 **********************************************/
	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("unable to connect to rabbitmq", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Error("unable to open a channel", slog.String("error", err.Error()))
		return
	}
	defer ch.Close()

	q, err := ch.QueueDeclare(
		"roster_email_queue",
		true,  // durable
		false, // no auto-delete, the queue must survive consumer restarts
		false, // not exclusive
		false, // wait for the broker to confirm
		nil,
	)
	if err != nil {
		logger.Error("unable to declare the queue", slog.String("error", err.Error()))
		return
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	msgs, err := ch.Consume(
		q.Name,
		"",
		false, // manual acks
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		logger.Error("unable to consume messages", slog.String("error", err.Error()))
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
				logger.Info("message received", slog.String("message", string(msg.Body)))
				mailMessage := domain.MailMessage{}
				if err := json.Unmarshal(msg.Body, &mailMessage); err != nil {
					logger.Error("unable to decode the mail message", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				m := mail.NewMsg()
				if err := m.From(cfg.Email.From); err != nil {
					logger.Error("unable to set the sender", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}
				if err := m.To(mailMessage.To); err != nil {
					logger.Error("unable to set the recipient", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				switch mailMessage.Type {
				case domain.MailTypeRoster:
					// Data round-tripped through JSON as a generic map;
					// remarshal it into the typed payload
					raw, err := json.Marshal(mailMessage.Data)
					if err != nil {
						logger.Error("unable to re-encode the mail payload", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					rosterData := domain.RosterMailData{}
					if err := json.Unmarshal(raw, &rosterData); err != nil {
						logger.Error("unable to decode the roster payload", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}

					tmpl, err := template.ParseFiles("./templates/roster_email.html")
					if err != nil {
						logger.Error("unable to parse the mail template", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					if err := m.SetBodyHTMLTemplate(tmpl, buildRosterView(&rosterData)); err != nil {
						logger.Error("unable to set the mail body", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}

					csvBuf := &bytes.Buffer{}
					if err := export.WriteRosterCSV(csvBuf, rosterData.Artifacts.Roster); err != nil {
						logger.Error("unable to render the roster CSV", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					if err := m.AttachReader("roster.csv", csvBuf); err != nil {
						logger.Error("unable to attach the roster CSV", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}

					m.Subject("Schedule Recommender - Daily Roster " + rosterData.DayDate)
				default:
					logger.Error("unsupported mail type", slog.String("type", mailMessage.Type))
					_ = msg.Nack(false, false)
					continue
				}

				if err := client.DialAndSend(m); err != nil {
					logger.Error("unable to send the mail", slog.String("error", err.Error()))
					_ = msg.Nack(false, true) // requeue, the SMTP side may recover
					continue
				}

				_ = msg.Ack(false)
			}
		}
	}()

	logger.Info("waiting for messages... (CTRL+C to exit)")
	<-sigChan

	slog.Info("shutting down mail worker...")
	cancel()
	wg.Wait()
	slog.Info("mail worker stopped")
}
