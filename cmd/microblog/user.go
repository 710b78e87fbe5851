package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"microblog/internal/config"
	"microblog/internal/database"
	"microblog/internal/models"
	"microblog/internal/repository"
	"microblog/internal/validators"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users",
	Long:  "List, create, and promote users. Registration only creates plain users; the first admin is created here.",
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all users",
	Run:   runUserList,
}

var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new user",
	Run:   runUserCreate,
}

var userPromoteCmd = &cobra.Command{
	Use:   "promote [email]",
	Short: "Set a user's role",
	Args:  cobra.ExactArgs(1),
	Run:   runUserPromote,
}

var (
	userEmail     string
	userPassword  string
	userFirstName string
	userLastName  string
	userRole      string
)

func init() {
	rootCmd.AddCommand(userCmd)
	userCmd.AddCommand(userListCmd)
	userCmd.AddCommand(userCreateCmd)
	userCmd.AddCommand(userPromoteCmd)

	userCreateCmd.Flags().StringVarP(&userEmail, "email", "e", "", "User email (required)")
	userCreateCmd.Flags().StringVarP(&userPassword, "password", "p", "", "User password (required)")
	userCreateCmd.Flags().StringVarP(&userFirstName, "first-name", "f", "", "First name")
	userCreateCmd.Flags().StringVarP(&userLastName, "last-name", "l", "", "Last name")
	userCreateCmd.Flags().StringVarP(&userRole, "role", "r", "user", "User role (user/blogger/admin)")
	userCreateCmd.MarkFlagRequired("email")
	userCreateCmd.MarkFlagRequired("password")

	userPromoteCmd.Flags().StringVarP(&userRole, "role", "r", "admin", "New role (user/blogger/admin)")
}

func getUserRepo() (*repository.UserRepository, *config.Config, func()) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := database.Connect(ctx, cfg.Database.URI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	repo := repository.NewUserRepository(client.Database(cfg.Database.Name))
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	return repo, cfg, func() { client.Disconnect(context.Background()) }
}

func runUserList(cmd *cobra.Command, args []string) {
	repo, _, cleanup := getUserRepo()
	defer cleanup()

	users, err := repo.List(context.Background())
	if err != nil {
		log.Fatalf("Failed to list users: %v", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEMAIL\tNAME\tROLE\tPOSTS\tCREATED")
	for _, u := range users {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			u.ID.Hex(), u.Email, u.Name(), u.Role, len(u.Posts), u.CreatedAt.Format("2006-01-02 15:04"))
	}
	w.Flush()
}

func runUserCreate(cmd *cobra.Command, args []string) {
	repo, cfg, cleanup := getUserRepo()
	defer cleanup()

	ctx := context.Background()
	email := validators.NormalizeEmail(userEmail)

	if err := validators.ValidateEmail(email); err != nil {
		log.Fatalf("Invalid email: %s", userEmail)
	}
	if err := validators.ValidatePassword(userPassword); err != nil {
		log.Fatalf("Password must be at least %d characters", validators.MinPasswordLength)
	}

	role := models.Role(userRole)
	if !role.Valid() {
		log.Fatalf("Invalid role: %s (must be user, blogger or admin)", userRole)
	}

	if existing, _ := repo.GetByEmail(ctx, email); existing != nil {
		log.Fatalf("User with email %s already exists", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(userPassword), cfg.Auth.BcryptCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    userFirstName,
		LastName:     userLastName,
		Role:         role,
		Posts:        []primitive.ObjectID{},
	}

	if err := repo.Create(ctx, user); err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}

	fmt.Printf("User %s created successfully (ID: %s, role: %s)\n", email, user.ID.Hex(), role)
}

func runUserPromote(cmd *cobra.Command, args []string) {
	repo, _, cleanup := getUserRepo()
	defer cleanup()

	ctx := context.Background()
	email := validators.NormalizeEmail(args[0])

	role := models.Role(userRole)
	if !role.Valid() {
		log.Fatalf("Invalid role: %s (must be user, blogger or admin)", userRole)
	}

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		log.Fatalf("User not found: %s", email)
	}

	user.Role = role
	if err := repo.Update(ctx, user); err != nil {
		log.Fatalf("Failed to update user: %v", err)
	}

	fmt.Printf("User %s is now %s\n", email, role)
}
