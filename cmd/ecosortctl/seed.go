package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ecosort/ecosort/internal/model"
)

func init() {
	var lang string
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the reference tips and rewards into the service (requires the admin API key)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var payload map[string]interface{}
			switch lang {
			case "en":
				payload = map[string]interface{}{"tips": seedTipsEN, "rewards": seedRewardsEN}
			case "id":
				payload = map[string]interface{}{"tips": seedTipsID, "rewards": seedRewardsID}
			default:
				return fmt.Errorf("unsupported --lang %q (en, id)", lang)
			}
			url := fmt.Sprintf("%s/api/admin/seed", apiFlag)
			data, err := doPostJSON(url, payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	seedCmd.Flags().StringVarP(&lang, "lang", "l", "en", "Seed data language (en, id)")
	rootCmd.AddCommand(seedCmd)
}

var seedTipsEN = []model.RecyclingTip{
	{
		WasteType:   model.WastePlastic,
		Title:       "Plastic Bottle Planter",
		Description: "Transform plastic bottles into beautiful planters for your garden",
		Difficulty:  "easy",
		Materials:   []string{"Plastic bottle", "Scissors", "Paint (optional)", "Soil", "Seeds"},
		Steps: []string{
			"Clean the plastic bottle thoroughly",
			"Cut the bottle in half",
			"Make drainage holes in the bottom",
			"Decorate with paint if desired",
			"Fill with soil and plant seeds",
		},
		PointsReward: 15,
		Tags:         []string{"gardening", "decoration", "upcycling"},
	},
	{
		WasteType:   model.WastePaper,
		Title:       "Paper Mache Art",
		Description: "Create beautiful art pieces using old newspapers and magazines",
		Difficulty:  "medium",
		Materials:   []string{"Old newspapers", "Flour", "Water", "Paint", "Brush"},
		Steps: []string{
			"Mix flour and water to make paste",
			"Tear paper into strips",
			"Dip strips in paste and layer on form",
			"Let dry completely",
			"Paint and decorate as desired",
		},
		PointsReward: 12,
		Tags:         []string{"art", "crafts", "creative"},
	},
	{
		WasteType:   model.WasteGlass,
		Title:       "Glass Jar Storage",
		Description: "Repurpose glass jars for kitchen and bathroom storage",
		Difficulty:  "easy",
		Materials:   []string{"Glass jars", "Labels", "Cleaning supplies"},
		Steps: []string{
			"Remove all labels and adhesive",
			"Clean thoroughly with soap and water",
			"Dry completely",
			"Add new labels for organization",
			"Use for storing spices, toiletries, or craft supplies",
		},
		PointsReward: 10,
		Tags:         []string{"organization", "storage", "kitchen"},
	},
	{
		WasteType:   model.WasteOrganic,
		Title:       "Home Composting",
		Description: "Turn organic waste into nutrient-rich compost for your garden",
		Difficulty:  "medium",
		Materials:   []string{"Organic waste", "Compost bin", "Brown materials (leaves, paper)", "Water"},
		Steps: []string{
			"Set up compost bin in suitable location",
			"Layer green (organic waste) and brown materials",
			"Keep moist but not waterlogged",
			"Turn regularly for aeration",
			"Harvest compost after 3-6 months",
		},
		PointsReward: 20,
		Tags:         []string{"gardening", "sustainability", "fertilizer"},
	},
	{
		WasteType:   model.WasteElectronic,
		Title:       "E-Waste Recycling",
		Description: "Properly dispose of electronic waste at certified centers",
		Difficulty:  "easy",
		Materials:   []string{"Electronic devices", "Transportation"},
		Steps: []string{
			"Remove all personal data from devices",
			"Find certified e-waste recycling center",
			"Separate different types of electronics",
			"Transport to recycling facility",
			"Get certificate of proper disposal",
		},
		PointsReward: 25,
		Tags:         []string{"electronics", "certified", "data-security"},
	},
}

var seedRewardsEN = []model.Reward{
	{Title: "Eco-Friendly Water Bottle", Description: "Reusable stainless steel water bottle", PointsCost: 500, Category: "product", IsActive: true},
	{Title: "Plant a Tree Donation", Description: "Donate to plant one tree in your name", PointsCost: 200, Category: "donation", IsActive: true},
	{Title: "Local Cafe Discount", Description: "10% off at participating eco-friendly cafes", PointsCost: 100, Category: "voucher", IsActive: true},
	{Title: "Organic Grocery Voucher", Description: "$5 off organic groceries", PointsCost: 300, Category: "voucher", IsActive: true},
}

var seedTipsID = []model.RecyclingTip{
	{
		WasteType:   model.WastePlastic,
		Title:       "Pot Tanaman dari Botol Plastik",
		Description: "Ubah botol plastik menjadi pot tanaman yang indah untuk kebun Anda",
		Difficulty:  "easy",
		Materials:   []string{"Botol plastik", "Gunting", "Cat (opsional)", "Tanah", "Benih"},
		Steps: []string{
			"Bersihkan botol plastik dengan teliti",
			"Potong botol menjadi dua bagian",
			"Buat lubang drainase di bagian bawah",
			"Hias dengan cat jika diinginkan",
			"Isi dengan tanah dan tanam benih",
		},
		PointsReward: 15,
		Tags:         []string{"berkebun", "dekorasi", "daur-ulang"},
	},
	{
		WasteType:   model.WastePaper,
		Title:       "Seni Paper Mache",
		Description: "Buat karya seni indah menggunakan koran dan majalah bekas",
		Difficulty:  "medium",
		Materials:   []string{"Koran bekas", "Tepung", "Air", "Cat", "Kuas"},
		Steps: []string{
			"Campur tepung dan air untuk membuat pasta",
			"Sobek kertas menjadi strip-strip",
			"Celupkan strip ke pasta dan tempelkan pada bentuk",
			"Biarkan kering sempurna",
			"Cat dan hias sesuai keinginan",
		},
		PointsReward: 12,
		Tags:         []string{"seni", "kerajinan", "kreatif"},
	},
	{
		WasteType:   model.WasteGlass,
		Title:       "Penyimpanan Toples Kaca",
		Description: "Manfaatkan kembali toples kaca untuk penyimpanan dapur dan kamar mandi",
		Difficulty:  "easy",
		Materials:   []string{"Toples kaca", "Label", "Perlengkapan pembersih"},
		Steps: []string{
			"Lepas semua label dan lem",
			"Bersihkan dengan sabun dan air",
			"Keringkan sempurna",
			"Tambahkan label baru untuk organisasi",
			"Gunakan untuk menyimpan rempah, toiletries, atau perlengkapan kerajinan",
		},
		PointsReward: 10,
		Tags:         []string{"organisasi", "penyimpanan", "dapur"},
	},
	{
		WasteType:   model.WasteOrganic,
		Title:       "Kompos Rumahan",
		Description: "Ubah sampah organik menjadi kompos kaya nutrisi untuk kebun Anda",
		Difficulty:  "medium",
		Materials:   []string{"Sampah organik", "Tempat kompos", "Bahan coklat (daun, kertas)", "Air"},
		Steps: []string{
			"Siapkan tempat kompos di lokasi yang sesuai",
			"Lapisi bahan hijau (sampah organik) dan bahan coklat",
			"Jaga kelembaban tapi jangan terlalu basah",
			"Aduk secara teratur untuk aerasi",
			"Panen kompos setelah 3-6 bulan",
		},
		PointsReward: 20,
		Tags:         []string{"berkebun", "keberlanjutan", "pupuk"},
	},
	{
		WasteType:   model.WasteElectronic,
		Title:       "Daur Ulang E-Waste",
		Description: "Buang limbah elektronik dengan benar di pusat daur ulang bersertifikat",
		Difficulty:  "easy",
		Materials:   []string{"Perangkat elektronik", "Transportasi"},
		Steps: []string{
			"Hapus semua data pribadi dari perangkat",
			"Cari pusat daur ulang e-waste bersertifikat",
			"Pisahkan berbagai jenis elektronik",
			"Bawa ke fasilitas daur ulang",
			"Dapatkan sertifikat pembuangan yang benar",
		},
		PointsReward: 25,
		Tags:         []string{"elektronik", "bersertifikat", "keamanan-data"},
	},
}

var seedRewardsID = []model.Reward{
	{Title: "Botol Air Ramah Lingkungan", Description: "Botol air stainless steel yang dapat digunakan kembali", PointsCost: 500, Category: "product", IsActive: true},
	{Title: "Donasi Tanam Pohon", Description: "Donasi untuk menanam satu pohon atas nama Anda", PointsCost: 200, Category: "donation", IsActive: true},
	{Title: "Diskon Kafe Lokal", Description: "Diskon 10% di kafe ramah lingkungan yang berpartisipasi", PointsCost: 100, Category: "voucher", IsActive: true},
	{Title: "Voucher Belanja Organik", Description: "Diskon Rp 75.000 untuk belanja organik", PointsCost: 300, Category: "voucher", IsActive: true},
}
