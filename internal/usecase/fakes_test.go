package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"portfolia/internal/domain/entity"
	"portfolia/internal/domain/repository"
	"portfolia/internal/domain/service"
	"portfolia/pkg/errors"
)

// In-memory stand-ins for the Firestore repositories and external
// collaborators. Each fake implements just enough behavior for the flows
// under test.

type fakeUserRepo struct {
	mu      sync.Mutex
	users   map[string]*entity.User
	roles   map[string]entity.Role
	roleErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users: make(map[string]*entity.User),
		roles: make(map[string]entity.Role),
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user.CreatedAt = time.Now()
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if user, ok := f.users[id]; ok {
		return user, nil
	}
	return nil, errors.NotFound("User", nil)
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetRole(ctx context.Context, userID string) (entity.Role, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.roleErr != nil {
		return "", f.roleErr
	}
	if role, ok := f.roles[userID]; ok {
		return role, nil
	}
	return "", errors.NotFound("Role", nil)
}

func (f *fakeUserRepo) SetRole(ctx context.Context, userID string, role entity.Role) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.roles[userID] = role
	return nil
}

type fakeChatRepo struct {
	mu       sync.Mutex
	convs    map[string]*entity.Conversation
	messages []*entity.ChatMessage
	seq      int
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{convs: make(map[string]*entity.Conversation)}
}

func (f *fakeChatRepo) CreateConversation(ctx context.Context, conv *entity.Conversation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	conv.ID = fmt.Sprintf("conv-%d", f.seq)
	conv.CreatedAt = time.Now()
	f.convs[conv.ID] = conv
	return nil
}

func (f *fakeChatRepo) GetConversation(ctx context.Context, id string) (*entity.Conversation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if conv, ok := f.convs[id]; ok {
		return conv, nil
	}
	return nil, errors.NotFound("Conversation", nil)
}

func (f *fakeChatRepo) GetConversationByUser(ctx context.Context, userID string) (*entity.Conversation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, conv := range f.convs {
		if conv.UserID == userID && conv.Status != entity.ConversationClosed {
			return conv, nil
		}
	}
	return nil, errors.NotFound("Conversation", nil)
}

func (f *fakeChatRepo) ListConversations(ctx context.Context, status string, limit, offset int) ([]*entity.Conversation, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Conversation
	for _, conv := range f.convs {
		if status == "" || conv.Status == status {
			out = append(out, conv)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeChatRepo) UpdateConversation(ctx context.Context, conv *entity.Conversation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.convs[conv.ID] = conv
	return nil
}

func (f *fakeChatRepo) CreateMessage(ctx context.Context, message *entity.ChatMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	message.ID = fmt.Sprintf("msg-%d", f.seq)
	message.CreatedAt = time.Now()
	f.messages = append(f.messages, message)
	return nil
}

func (f *fakeChatRepo) ListMessages(ctx context.Context, conversationID string, limit, offset int) ([]*entity.ChatMessage, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.ChatMessage
	for _, msg := range f.messages {
		if msg.ConversationID == conversationID {
			out = append(out, msg)
		}
	}
	return out, int64(len(out)), nil
}

type fakeArticleRepo struct {
	mu       sync.Mutex
	articles map[string]*entity.Article
	comments map[string][]*entity.Comment
	likes    map[string]map[string]bool // articleID -> userID -> liked
	seq      int
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{
		articles: make(map[string]*entity.Article),
		comments: make(map[string][]*entity.Comment),
		likes:    make(map[string]map[string]bool),
	}
}

func (f *fakeArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	article.ID = fmt.Sprintf("art-%d", f.seq)
	article.CreatedAt = time.Now()
	article.UpdatedAt = article.CreatedAt
	f.articles[article.ID] = article
	return nil
}

func (f *fakeArticleRepo) GetByID(ctx context.Context, id string) (*entity.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if article, ok := f.articles[id]; ok {
		return article, nil
	}
	return nil, errors.NotFound("Article", nil)
}

func (f *fakeArticleRepo) GetBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, article := range f.articles {
		if article.Slug == slug {
			return article, nil
		}
	}
	return nil, errors.NotFound("Article", nil)
}

func (f *fakeArticleRepo) List(ctx context.Context, filter repository.ArticleFilter, limit, offset int) ([]*entity.Article, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Article
	for _, article := range f.articles {
		if filter.PublishedOnly && !article.Published {
			continue
		}
		if filter.FeaturedOnly && !article.Featured {
			continue
		}
		out = append(out, article)
	}
	return out, int64(len(out)), nil
}

func (f *fakeArticleRepo) Update(ctx context.Context, article *entity.Article) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	article.UpdatedAt = time.Now()
	f.articles[article.ID] = article
	return nil
}

func (f *fakeArticleRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.articles, id)
	return nil
}

func (f *fakeArticleRepo) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, article := range f.articles {
		if article.Slug == slug && article.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeArticleRepo) CreateComment(ctx context.Context, comment *entity.Comment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	comment.ID = fmt.Sprintf("com-%d", f.seq)
	comment.CreatedAt = time.Now()
	f.comments[comment.ArticleID] = append(f.comments[comment.ArticleID], comment)
	return nil
}

func (f *fakeArticleRepo) ListComments(ctx context.Context, articleID string) ([]*entity.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.comments[articleID], nil
}

func (f *fakeArticleRepo) DeleteComment(ctx context.Context, articleID, commentID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	comments := f.comments[articleID]
	for i, comment := range comments {
		if comment.ID == commentID {
			f.comments[articleID] = append(comments[:i], comments[i+1:]...)
			return nil
		}
	}
	return errors.NotFound("Comment", nil)
}

func (f *fakeArticleRepo) ToggleLike(ctx context.Context, articleID, userID string) (bool, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.likes[articleID] == nil {
		f.likes[articleID] = make(map[string]bool)
	}
	liked := !f.likes[articleID][userID]
	if liked {
		f.likes[articleID][userID] = true
	} else {
		delete(f.likes[articleID], userID)
	}
	return liked, len(f.likes[articleID]), nil
}

func (f *fakeArticleRepo) CountLikes(ctx context.Context, articleID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.likes[articleID]), nil
}

type fakeDonationRepo struct {
	mu    sync.Mutex
	byRef map[string]*entity.Donation
	seq   int
}

func newFakeDonationRepo() *fakeDonationRepo {
	return &fakeDonationRepo{byRef: make(map[string]*entity.Donation)}
}

func (f *fakeDonationRepo) Create(ctx context.Context, donation *entity.Donation) (bool, *entity.Donation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if existing, ok := f.byRef[donation.Reference]; ok {
		return false, existing, nil
	}
	f.seq++
	donation.ID = fmt.Sprintf("don-%d", f.seq)
	donation.CreatedAt = time.Now()
	f.byRef[donation.Reference] = donation
	return true, nil, nil
}

func (f *fakeDonationRepo) GetByReference(ctx context.Context, reference string) (*entity.Donation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if donation, ok := f.byRef[reference]; ok {
		return donation, nil
	}
	return nil, errors.NotFound("Donation", nil)
}

func (f *fakeDonationRepo) List(ctx context.Context, limit, offset int) ([]*entity.Donation, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Donation
	for _, donation := range f.byRef {
		out = append(out, donation)
	}
	return out, int64(len(out)), nil
}

type fakeSettingsRepo struct {
	mu      sync.Mutex
	prefs   map[string]*entity.NotificationPreferences
	loadErr error
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{prefs: make(map[string]*entity.NotificationPreferences)}
}

func (f *fakeSettingsRepo) Load(ctx context.Context, userID string) (*entity.NotificationPreferences, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	if prefs, ok := f.prefs[userID]; ok {
		return prefs, nil
	}
	return entity.DefaultNotificationPreferences(userID), nil
}

func (f *fakeSettingsRepo) Save(ctx context.Context, prefs *entity.NotificationPreferences) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prefs[prefs.UserID] = prefs
	return nil
}

type fakeContactRepo struct {
	mu        sync.Mutex
	messages  []*entity.ContactMessage
	emailLogs []*entity.EmailLog
	seq       int
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{}
}

func (f *fakeContactRepo) CreateMessage(ctx context.Context, msg *entity.ContactMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	msg.ID = fmt.Sprintf("cm-%d", f.seq)
	msg.CreatedAt = time.Now()
	f.messages = append(f.messages, msg)
	return nil
}

func (f *fakeContactRepo) ListMessages(ctx context.Context, limit, offset int) ([]*entity.ContactMessage, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.messages, int64(len(f.messages)), nil
}

func (f *fakeContactRepo) MarkRead(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, msg := range f.messages {
		if msg.ID == id {
			msg.Read = true
			return nil
		}
	}
	return errors.NotFound("Message", nil)
}

func (f *fakeContactRepo) CreateEmailLog(ctx context.Context, log *entity.EmailLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.emailLogs = append(f.emailLogs, log)
	return nil
}

func (f *fakeContactRepo) ListEmailLogs(ctx context.Context, limit, offset int) ([]*entity.EmailLog, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.emailLogs, int64(len(f.emailLogs)), nil
}

// fakePusher records every push so tests can assert on delivery.
type fakePusher struct {
	mu     sync.Mutex
	toUser map[string][][]byte
}

func newFakePusher() *fakePusher {
	return &fakePusher{toUser: make(map[string][][]byte)}
}

func (f *fakePusher) SendToUser(userID string, message []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.toUser[userID] = append(f.toUser[userID], message)
}

func (f *fakePusher) SendToAdmins(message []byte) {}

func (f *fakePusher) sentTo(userID string) [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]byte(nil), f.toUser[userID]...)
}

type fakeGateway struct {
	initResult    *service.PaymentInit
	initErr       error
	verifications map[string]*service.PaymentVerification
	verifyErr     error
	verifyCalls   int
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{verifications: make(map[string]*service.PaymentVerification)}
}

func (f *fakeGateway) InitializePayment(ctx context.Context, req service.PaymentRequest) (*service.PaymentInit, error) {
	if f.initErr != nil {
		return nil, f.initErr
	}
	if f.initResult != nil {
		return f.initResult, nil
	}
	return &service.PaymentInit{
		AuthorizationURL: "https://checkout.example/" + req.Reference,
		AccessCode:       "access",
		Reference:        req.Reference,
	}, nil
}

func (f *fakeGateway) VerifyPayment(ctx context.Context, reference string) (*service.PaymentVerification, error) {
	f.verifyCalls++
	if f.verifyErr != nil {
		return nil, f.verifyErr
	}
	if v, ok := f.verifications[reference]; ok {
		return v, nil
	}
	return &service.PaymentVerification{Reference: reference, Status: "failed"}, nil
}

type fakeAssistant struct {
	reply string
	err   error
	calls int
}

func (f *fakeAssistant) Reply(ctx context.Context, messages []*entity.ChatMessage) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}
