package main

import (
	"bufio"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/agrowatch/awd-atlas-cli/internal/delivery"
	"github.com/agrowatch/awd-atlas-cli/internal/notification"
	"github.com/agrowatch/awd-atlas-cli/internal/studyarea"
	"github.com/common-nighthawk/go-figure"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func printBanner() {
	figure1 := figure.NewFigure("AWD", "isometric1", true)
	figure2 := figure.NewFigure("Atlas", "isometric1", true)
	color.Cyan(figure1.String())
	color.Cyan(figure2.String())
	fmt.Println()
}

func readStudyArea(reader *bufio.Reader) (string, bool) {
	color.Green("\nAvailable study areas:")
	for _, name := range studyarea.Names() {
		color.Green("- %s", name)
	}
	fmt.Print(color.BlueString("Enter the study area name: "))
	name, _ := reader.ReadString('\n')
	name = strings.TrimSpace(name)
	if _, err := studyarea.Get(name); err != nil {
		color.Red("\n%s", err.Error())
		return "", false
	}
	return name, true
}

func initCLI() {
	defer func() {
		if r := recover(); r != nil {
			color.Red("\nPANIC: %v", r)
			color.Red("Please check the input and try again.")
			color.Red("Exiting...")
			errMessage := fmt.Sprintf("AWD Atlas CLI panic:\n\n%v\n\nStack trace:\n%s", r, debug.Stack())
			if err := notification.SendError(errMessage); err != nil {
				color.Red("Failed to send notification: %s", err.Error())
			}
		}
	}()
	printBanner()

	reader := bufio.NewReader(os.Stdin)
	for {
		color.Blue("===================")
		color.Blue("1. Run a suitability assessment")
		color.Blue("2. Threshold sensitivity analysis")
		color.Blue("3. Compare fragmentation of two study areas")
		color.Blue("4. List study areas")
		color.Blue("5. Exit")
		color.Blue("Enter your choice:")

		var choice int
		if _, err := fmt.Scan(&choice); err != nil {
			color.Red("\nInvalid input. Please enter a number.")
			fmt.Scanln()
			continue
		}

		switch choice {
		case 1:
			color.Yellow("\nWarning:")
			color.Yellow("- Co-registered 'dem.tif', 'clay.tif', 'sand.tif' and 'wb_class.tif' must be present in data/rasters/<area>/.")
			color.Yellow("- An optional 'regions.tif' enables the regional breakdown.\n")

			area, ok := readStudyArea(reader)
			if !ok {
				continue
			}

			res, err := delivery.RunAssessment(area)
			if err != nil {
				color.Red("\nError running assessment: %s", err.Error())
				notification.SendError(fmt.Sprintf("AWD Atlas CLI\n\nError running assessment: %s", err.Error()))
				continue
			}

			resultDir, err := delivery.SaveAssessment(res)
			if err != nil {
				color.Red("\nError saving results: %s", err.Error())
				continue
			}

			color.Green("\nAssessment complete for %s", area)
			color.Green("  Suitable area: %.1f km2 in %d patches", res.SuitableAreaKm2, res.Summary.PatchCount)
			color.Green("  Fragmentation index: %.3f", res.Summary.FragmentationIndex)
			color.Green("  Estimated extension cost: $%.0f", res.ExtensionCost)
			color.Green("  Results written to: %s", resultDir)
			notification.SendSuccess(fmt.Sprintf("AWD Atlas CLI\n\nAssessment complete for %s\nResults at: %s", area, resultDir))
		case 2:
			area, ok := readStudyArea(reader)
			if !ok {
				continue
			}

			rows, resultPath, err := delivery.RunSensitivity(area)
			if err != nil {
				color.Red("\nError running sensitivity analysis: %s", err.Error())
				continue
			}

			color.Green("\nThreshold sensitivity for %s:", area)
			for _, row := range rows {
				color.Green("  %6.0f mm -> %5.1f%% suitable (class %d, %d/%d dekads)",
					row.ThresholdMM, row.PercentageSuitable, row.SuitabilityClass,
					row.NumSuitableDekads, row.NumTotalDekads)
			}
			color.Green("  Table written to: %s", resultPath)
		case 3:
			color.Yellow("\nBoth areas are fully assessed; this can take a while.\n")
			areaA, ok := readStudyArea(reader)
			if !ok {
				continue
			}
			areaB, ok := readStudyArea(reader)
			if !ok {
				continue
			}

			cmp, err := delivery.CompareAreas(areaA, areaB)
			if err != nil {
				color.Red("\nError comparing areas: %s", err.Error())
				continue
			}

			color.Green("\nFragmentation comparison:")
			color.Green("  %s: index %.3f, %d patches", cmp.AreaA, cmp.SummaryA.FragmentationIndex, cmp.SummaryA.PatchCount)
			color.Green("  %s: index %.3f, %d patches", cmp.AreaB, cmp.SummaryB.FragmentationIndex, cmp.SummaryB.PatchCount)
			color.Green("  Index ratio (%s/%s): %.2fx", cmp.AreaB, cmp.AreaA, cmp.Comparison.IndexRatio)
			color.Green("  Patch ratio (%s/%s): %.2fx", cmp.AreaB, cmp.AreaA, cmp.Comparison.PatchRatio)
		case 4:
			color.Green("\nAvailable study areas:")
			for _, name := range studyarea.Names() {
				sa, _ := studyarea.Get(name)
				color.Green("- %s (season dekads %d-%d, year %d)", name, sa.SeasonStartDekad, sa.SeasonEndDekad, sa.Year)
			}
		case 5:
			println("Exiting...")
			return
		default:
			println("Invalid choice. Please try again.")
		}
	}
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			fmt.Println("No .env file found, relying on process environment")
		}
	}

	initCLI()
}
