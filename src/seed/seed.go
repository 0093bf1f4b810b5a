package seed

import (
	"log"

	"github.com/PatrimonioSaude/Patrimonio-Backend/src/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Seed(db *gorm.DB) {
	// Users
	var user models.UserModel
	result := db.Where("username = ?", "admin").First(&user)
	if result.Error == nil {
		log.Println("User 'admin' already exists")
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)

		newUser := models.UserModel{
			Username: "admin",
			Password: string(hashedPassword),
		}
		if err := db.Create(&newUser).Error; err != nil {
			log.Printf("Failed to create user: %v\n", err)
		} else {
			log.Println("User 'admin' created")
		}
	}

	// Mantenedora - the company printed on responsibility terms
	var mantenedora models.MantenedoraModel
	if err := db.First(&mantenedora).Error; err == nil {
		log.Println("Mantenedora already registered")
	} else {
		cnpj := "00.000.000/0001-00"
		nova := models.MantenedoraModel{
			Mantenedora: "Secretaria Municipal de Saúde",
			Cnpj:        &cnpj,
		}
		if err := db.Create(&nova).Error; err != nil {
			log.Printf("Failed to create mantenedora: %v\n", err)
		} else {
			log.Println("Mantenedora created")
		}
	}

	// Base classifications used by the asset forms
	classificacoes := []string{"Equipamento de Informática", "Mobiliário", "Equipamento Médico-Hospitalar"}
	createdCount := 0
	for _, nome := range classificacoes {
		var existing models.ClassificacaoModel
		checkResult := db.Where("classificacao = ?", nome).First(&existing)
		if checkResult.Error == nil {
			continue
		}
		classificacao := models.ClassificacaoModel{
			Classificacao: nome,
			Ativo:         true,
		}
		if err := db.Create(&classificacao).Error; err != nil {
			log.Printf("Failed to create classificação %q: %v\n", nome, err)
		} else {
			createdCount++
		}
	}
	if createdCount > 0 {
		log.Printf("Finished creating %d new classificações\n", createdCount)
	} else {
		log.Println("All base classificações already exist")
	}
}
