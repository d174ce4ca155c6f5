// Command token registers a member by social id and prints an access token for it.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"eatda/internal/config"
	"eatda/internal/middleware"
	"eatda/internal/model"
	"eatda/internal/repository"
	"eatda/internal/service"
	"eatda/pkg/database"
	"eatda/pkg/logger"
)

func main() {
	socialID := flag.String("social-id", "", "social provider user id (required)")
	nickname := flag.String("nickname", "", "nickname for a newly created member")
	refresh := flag.Bool("refresh", false, "also print a refresh token")
	flag.Parse()

	if *socialID == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Load()
	if _, err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		log.Fatalf("init logger: %v", err)
	}
	middleware.SetJWTConfig(&middleware.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenTTL:  cfg.JWT.AccessTTL,
		RefreshTokenTTL: cfg.JWT.RefreshTTL,
		Issuer:          cfg.JWT.Issuer,
	})

	db, err := database.InitDB(database.Options{DSN: cfg.Database.DSN}, &model.Member{})
	if err != nil {
		log.Fatalf("init database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	members := service.NewMemberService(repository.NewMemberRepository(db))
	member, created, err := members.Register(ctx, *socialID, *nickname)
	if err != nil {
		log.Fatalf("register member: %v", err)
	}

	access, refreshToken, err := middleware.GenerateTokenPair(member.ID)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Printf("member_id=%d created=%t\n", member.ID, created)
	fmt.Printf("access_token=%s\n", access)
	if *refresh {
		fmt.Printf("refresh_token=%s\n", refreshToken)
	}
}
