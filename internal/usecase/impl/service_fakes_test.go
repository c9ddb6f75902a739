package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"stockroom/internal/domain/entity"
	"stockroom/internal/domain/repository"
	"stockroom/internal/domain/service"

	"github.com/pkg/errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- In-memory repositories ---

type fakeUserRepo struct {
	users     map[string]*entity.User
	createErr error
	findErr   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	user, ok := r.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return user, nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	if _, ok := r.users[user.Email]; ok {
		return errors.New("duplicate email")
	}
	user.CreatedAt = time.Now()
	r.users[user.Email] = user

	return nil
}

type fakeCategoryRepo struct {
	categories map[uint]*entity.Category
	products   map[uint]int64
	nextID     uint
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{
		categories: map[uint]*entity.Category{},
		products:   map[uint]int64{},
		nextID:     1,
	}
}

func (r *fakeCategoryRepo) seed(category *entity.Category) *entity.Category {
	if category.ID == 0 {
		category.ID = r.nextID
		r.nextID++
	}
	r.categories[category.ID] = category

	return category
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uint) (*entity.Category, error) {
	category, ok := r.categories[id]
	if !ok {
		return nil, repository.ErrCategoryNotFound
	}

	return category, nil
}

func (r *fakeCategoryRepo) FindByName(_ context.Context, name string) (*entity.Category, error) {
	for _, category := range r.categories {
		if category.Name == name {
			return category, nil
		}
	}

	return nil, repository.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) FindAll(_ context.Context) ([]*entity.Category, error) {
	result := make([]*entity.Category, 0, len(r.categories))
	for id := uint(1); id < r.nextID; id++ {
		if category, ok := r.categories[id]; ok {
			result = append(result, category)
		}
	}

	return result, nil
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	r.seed(category)

	return nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, category *entity.Category) error {
	r.categories[category.ID] = category

	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id uint) error {
	delete(r.categories, id)

	return nil
}

func (r *fakeCategoryRepo) CountProducts(_ context.Context, id uint) (int64, error) {
	return r.products[id], nil
}

type fakeProductRepo struct {
	items  map[uint]*entity.Product
	nextID uint
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{items: map[uint]*entity.Product{}, nextID: 1}
}

func (r *fakeProductRepo) seed(product *entity.Product) *entity.Product {
	if product.ID == 0 {
		product.ID = r.nextID
		r.nextID++
	}
	r.items[product.ID] = product

	return product
}

func (r *fakeProductRepo) FindAll(_ context.Context) ([]*entity.Product, error) {
	result := make([]*entity.Product, 0, len(r.items))
	for id := uint(1); id < r.nextID; id++ {
		if product, ok := r.items[id]; ok {
			result = append(result, product)
		}
	}

	return result, nil
}

func (r *fakeProductRepo) FindByName(_ context.Context, name string) (*entity.Product, error) {
	for _, product := range r.items {
		if product.Name == name {
			return product, nil
		}
	}

	return nil, repository.ErrProductNotFound
}

func (r *fakeProductRepo) FindOwnedByID(_ context.Context, id uint, ownerEmail string) (*entity.Product, error) {
	product, ok := r.items[id]
	if !ok || product.OwnerEmail != ownerEmail {
		return nil, repository.ErrProductNotFound
	}

	return product, nil
}

func (r *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.seed(product)

	return nil
}

func (r *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	r.items[product.ID] = product

	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id uint) error {
	delete(r.items, id)

	return nil
}

// --- Transaction plumbing ---

// fakeTxManager hands the same repositories to the transactional closure,
// so tests observe exactly what the closure did.
type fakeTxManager struct {
	factory *fakeRepoFactory
	execErr error
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	if m.execErr != nil {
		return m.execErr
	}

	return fn(m.factory)
}

type fakeRepoFactory struct {
	userRepo     *fakeUserRepo
	categoryRepo *fakeCategoryRepo
	productRepo  *fakeProductRepo
}

func (f *fakeRepoFactory) UserRepo() repository.UserRepository         { return f.userRepo }
func (f *fakeRepoFactory) CategoryRepo() repository.CategoryRepository { return f.categoryRepo }
func (f *fakeRepoFactory) ProductRepo() repository.ProductRepository   { return f.productRepo }

// --- Domain services ---

// fakeHasher marks hashes with a prefix instead of running bcrypt.
type fakeHasher struct {
	hashErr error
}

func (h *fakeHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}

	return "hashed:" + password, nil
}

func (h *fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

// fakeTokenService issues deterministic tokens embedding the email.
type fakeTokenService struct {
	issueErr  error
	verifyErr error
}

func (s *fakeTokenService) IssueAccessToken(email string) (string, error) {
	if s.issueErr != nil {
		return "", s.issueErr
	}

	return "access:" + email, nil
}

func (s *fakeTokenService) IssueRefreshToken(email string) (string, error) {
	if s.issueErr != nil {
		return "", s.issueErr
	}

	return "refresh:" + email, nil
}

func (s *fakeTokenService) VerifyAccessToken(token string) (*service.Claims, error) {
	return s.verify(token, "access:")
}

func (s *fakeTokenService) VerifyRefreshToken(token string) (*service.Claims, error) {
	return s.verify(token, "refresh:")
}

func (s *fakeTokenService) verify(token, prefix string) (*service.Claims, error) {
	if s.verifyErr != nil {
		return nil, s.verifyErr
	}
	if len(token) <= len(prefix) || token[:len(prefix)] != prefix {
		return nil, errors.New("invalid or expired token")
	}

	return &service.Claims{Email: token[len(prefix):]}, nil
}

func (s *fakeTokenService) AccessTokenDuration() time.Duration {
	return 15 * time.Minute
}
