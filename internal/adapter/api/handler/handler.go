package handler

import (
	"portfolia/internal/domain/repository"
	"portfolia/internal/infrastructure/storage"
	"portfolia/internal/usecase"
)

var (
	authHandler     *AuthHandler
	chatHandler     *ChatHandler
	articleHandler  *ArticleHandler
	donationHandler *DonationHandler
	contentHandler  *ContentHandler
	contactHandler  *ContactHandler
	adminHandler    *AdminHandler
	mediaHandler    *MediaHandler
	sitemapHandler  *SitemapHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	chatUseCase *usecase.ChatUseCase,
	articleUseCase *usecase.ArticleUseCase,
	donationUseCase *usecase.DonationUseCase,
	contentUseCase *usecase.ContentUseCase,
	contactUseCase *usecase.ContactUseCase,
	notificationUseCase *usecase.NotificationUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	chatHandler = NewChatHandler(chatUseCase)
	articleHandler = NewArticleHandler(articleUseCase)
	donationHandler = NewDonationHandler(donationUseCase)
	contentHandler = NewContentHandler(contentUseCase)
	contactHandler = NewContactHandler(contactUseCase)
	adminHandler = NewAdminHandler(authUseCase, notificationUseCase)
}

func SetupMediaHandler(storageClient *storage.CloudStorageClient, mediaRepo repository.MediaRepository) {
	mediaHandler = NewMediaHandler(storageClient, mediaRepo)
}

func SetupSitemapHandler(articleUseCase *usecase.ArticleUseCase, siteURL string) {
	sitemapHandler = NewSitemapHandler(articleUseCase, siteURL)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetChatHandler() *ChatHandler {
	return chatHandler
}

func GetArticleHandler() *ArticleHandler {
	return articleHandler
}

func GetDonationHandler() *DonationHandler {
	return donationHandler
}

func GetContentHandler() *ContentHandler {
	return contentHandler
}

func GetContactHandler() *ContactHandler {
	return contactHandler
}

func GetAdminHandler() *AdminHandler {
	return adminHandler
}

func GetMediaHandler() *MediaHandler {
	return mediaHandler
}

func GetSitemapHandler() *SitemapHandler {
	return sitemapHandler
}
