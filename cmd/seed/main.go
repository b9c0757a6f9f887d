package main

import (
	"errors"
	"fmt"

	"pata-go/internal/config"
	"pata-go/internal/infra/database"
	"pata-go/internal/model"
	"pata-go/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 种子数据：宠物类别、各类别的常见品种，以及演示用宠物记录
// 以唯一名称判重，重复执行不会产生重复数据
func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.FilePath); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close()

	if err := database.AutoMigrate(
		&model.User{},
		&model.PetType{},
		&model.BreedType{},
		&model.Animal{},
		&model.Favorite{},
	); err != nil {
		logger.Fatal("Failed to auto migrate", zap.Error(err))
	}

	db := database.Get()

	if err := seedTaxonomy(db); err != nil {
		logger.Fatal("Failed to seed taxonomy", zap.Error(err))
	}
	if err := seedAnimals(db); err != nil {
		logger.Fatal("Failed to seed animals", zap.Error(err))
	}

	logger.Info("Seed completed")
}

var taxonomySeed = map[string][]string{
	"Dogs":    {"Labrador Retriever", "German Shepherd", "Golden Retriever", "Poodle", "Mixed"},
	"Cats":    {"Domestic Shorthair", "Siamese", "Maine Coon", "Persian", "Mixed"},
	"Birds":   {"Parakeet", "Cockatiel", "Canary"},
	"Rabbits": {"Holland Lop", "Netherland Dwarf", "Mixed"},
}

func seedTaxonomy(db *gorm.DB) error {
	for typeName, breeds := range taxonomySeed {
		petType, err := ensurePetType(db, typeName)
		if err != nil {
			return err
		}

		for _, breedName := range breeds {
			var breed model.BreedType
			err := db.Where("pet_type_id = ? AND name = ?", petType.ID, breedName).First(&breed).Error
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			if err := db.Create(&model.BreedType{PetTypeID: petType.ID, Name: breedName}).Error; err != nil {
				return err
			}
		}

		logger.Info("Pet type seeded", zap.String("name", typeName), zap.Int("breeds", len(breeds)))
	}
	return nil
}

func ensurePetType(db *gorm.DB, name string) (*model.PetType, error) {
	var petType model.PetType
	err := db.Where("name = ?", name).First(&petType).Error
	if err == nil {
		return &petType, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	petType = model.PetType{Name: name}
	if err := db.Create(&petType).Error; err != nil {
		return nil, err
	}
	return &petType, nil
}

func seedAnimals(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Animal{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Info("Animals already present, skipping demo seed", zap.Int64("count", count))
		return nil
	}

	owner, err := ensureSeedUser(db)
	if err != nil {
		return err
	}

	dogs, err := ensurePetType(db, "Dogs")
	if err != nil {
		return err
	}
	cats, err := ensurePetType(db, "Cats")
	if err != nil {
		return err
	}

	lat1, lng1 := 43.6532, -79.3832
	lat2, lng2 := 43.7315, -79.7624

	animals := []model.Animal{
		{
			OwnerID:     owner.ID,
			Name:        "Milo",
			Description: "活泼亲人的金毛，已完成疫苗接种",
			Images:      []string{},
			Gender:      model.GenderMale,
			Size:        model.SizeLarge,
			Age:         model.AgeYoung,
			Latitude:    &lat1,
			Longitude:   &lng1,
			Address:     "100 Queen St W",
			City:        "Toronto",
			State:       "ON",
			Country:     "Canada",
			PetTypeID:   dogs.ID,
		},
		{
			OwnerID:     owner.ID,
			Name:        "Luna",
			Description: "安静的短毛猫，适合公寓饲养",
			Images:      []string{},
			Gender:      model.GenderFemale,
			Size:        model.SizeSmall,
			Age:         model.AgeAdult,
			Latitude:    &lat2,
			Longitude:   &lng2,
			Address:     "1 City Centre Dr",
			City:        "Mississauga",
			State:       "ON",
			Country:     "Canada",
			PetTypeID:   cats.ID,
		},
	}

	if err := db.Create(&animals).Error; err != nil {
		return err
	}

	logger.Info("Demo animals seeded", zap.Int("count", len(animals)))
	return nil
}

func ensureSeedUser(db *gorm.DB) (*model.User, error) {
	const email = "shelter@pata.app"

	var user model.User
	err := db.Where("email = ?", email).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = model.User{Email: email, Name: "Pata Shelter"}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
