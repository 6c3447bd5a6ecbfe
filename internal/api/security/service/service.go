package securityService

import (
	"os"
	"strings"

	"DespachoJuridico/internal/api/security/repository"
	"DespachoJuridico/internal/entity"
	"DespachoJuridico/pkg/nlp"
	"DespachoJuridico/pkg/redis"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type ISecurityService interface {
	Inspect(text string) entity.ExtortionCheck
	ShouldRespond(phone string) bool
	Block(phone, reason string) error
	Unblock(phone string) error
	MarkSuspicious(ctx context.Context, phone string) (blocked bool, strikes int64, err error)
	WarningMessage(severity int) string
	WelcomeMessage() string
	Report() entity.SecurityReport
}

type securityService struct {
	log          *logrus.Logger
	securityRp   securityRepository.ISecurityRepository
	redisClient  redis.IRedis
	nlpProcessor nlp.INLPProcessor

	testMode       bool
	allowedNumbers map[string]bool
}

// NewSecurityService builds the anti-extortion filter. TEST_MODE=true plus a
// comma separated ALLOWED_NUMBERS restricts who the bot answers, which keeps
// a staging session from talking to real clients.
func NewSecurityService(
	log *logrus.Logger,
	securityRp securityRepository.ISecurityRepository,
	redisClient redis.IRedis,
	nlpProcessor nlp.INLPProcessor,
) ISecurityService {
	s := &securityService{
		log:            log,
		securityRp:     securityRp,
		redisClient:    redisClient,
		nlpProcessor:   nlpProcessor,
		allowedNumbers: map[string]bool{},
	}

	s.testMode = strings.EqualFold(os.Getenv("TEST_MODE"), "true")
	for _, number := range strings.Split(os.Getenv("ALLOWED_NUMBERS"), ",") {
		number = strings.TrimSpace(number)
		if number != "" {
			s.allowedNumbers[number] = true
		}
	}

	if s.testMode {
		log.WithField("allowed", len(s.allowedNumbers)).Warn("Test mode active, answering allowlisted numbers only")
	}

	return s
}
