package usecase

import (
	"sync"
	"time"

	"collabhub/internal/adapter/repository"
	"collabhub/internal/domain/entity"
	domainrepo "collabhub/internal/domain/repository"
)

type notification struct {
	Title  string
	Body   string
	Action string
}

// recordingNotifier captures fire-and-forget alerts for assertions.
type recordingNotifier struct {
	mu     sync.Mutex
	events []notification
}

func (n *recordingNotifier) Notify(title, body, action string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, notification{Title: title, Body: body, Action: action})
}

func (n *recordingNotifier) Events() []notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]notification, len(n.events))
	copy(out, n.events)
	return out
}

func testContacts() []*entity.Contact {
	now := time.Now()
	return []*entity.Contact{
		{ID: "1", Name: "Fashion Brand", Avatar: "/placeholder.svg", LastMessageAt: now},
		{ID: "2", Name: "Travel Company", Avatar: "/placeholder.svg", LastMessageAt: now},
	}
}

type fixture struct {
	contactRepo  domainrepo.ContactRepository
	messageRepo  domainrepo.MessageRepository
	dealRepo     domainrepo.DealRepository
	escrowRepo   domainrepo.EscrowRepository
	coins        *CoinUseCase
	conversation *ConversationUseCase
	deals        *DealUseCase
	notifier     *recordingNotifier
}

func newFixture(startingCoins int64) *fixture {
	f := &fixture{
		contactRepo: repository.NewMemoryContactRepository(testContacts()),
		messageRepo: repository.NewMemoryMessageRepository(nil),
		dealRepo:    repository.NewMemoryDealRepository(nil),
		escrowRepo:  repository.NewMemoryEscrowRepository(),
		coins:       NewCoinUseCase(startingCoins),
		notifier:    &recordingNotifier{},
	}
	f.conversation = NewConversationUseCase(f.contactRepo, f.messageRepo, f.coins, f.notifier)
	f.deals = NewDealUseCase(f.dealRepo, f.contactRepo, f.conversation, f.coins, f.notifier)
	return f
}
