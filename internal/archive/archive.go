package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"sumobuild/internal/scenario"
	"sumobuild/internal/sumo"
)

// Build собирает экспортный ZIP: пять документов под их стандартными
// именами плюс README.txt с командами запуска. Имя архива содержит имя
// проекта и момент генерации, чтобы повторные экспорты не затирали
// друг друга.
func Build(docs map[sumo.DocKind]string, project scenario.Project, now time.Time) ([]byte, string, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, kind := range sumo.DocKinds {
		w, err := zw.Create(sumo.FileNames[kind])
		if err != nil {
			return nil, "", errors.Wrapf(err, "can not add %s to archive", sumo.FileNames[kind])
		}
		if _, err := w.Write([]byte(docs[kind])); err != nil {
			return nil, "", errors.Wrapf(err, "can not write %s", sumo.FileNames[kind])
		}
	}

	w, err := zw.Create("README.txt")
	if err != nil {
		return nil, "", errors.Wrap(err, "can not add README.txt to archive")
	}
	if _, err := w.Write([]byte(Readme(project))); err != nil {
		return nil, "", errors.Wrap(err, "can not write README.txt")
	}

	if err := zw.Close(); err != nil {
		return nil, "", errors.Wrap(err, "can not finalize archive")
	}

	name := fmt.Sprintf("%s_%s.zip", project.Name, now.Format("20060102_150405"))
	return buf.Bytes(), name, nil
}

// Readme формирует инструкцию с двумя командами внешних инструментов:
// сборка сети netconvert-ом (с условным --lefthand) и запуск симуляции
func Readme(project scenario.Project) string {
	lefthandFlag := ""
	if project.DrivingSide == "left" {
		lefthandFlag = " --lefthand"
	}
	return fmt.Sprintf(
		"# SUMO Scenario Builder\n"+
			"Project: %s\n\n"+
			"## 1) Build network (.net.xml)\n"+
			"netconvert -n nodes.nod.xml -e edges.edg.xml -o %s%s\n\n"+
			"## 2) Run simulation\n"+
			"sumo -c %s\n\n"+
			"Notes:\n"+
			"- Left-hand countries require the --lefthand flag at net conversion stage.\n"+
			"- Ensure edge lane IDs (e.g., e1_0) match detector lane inputs.\n",
		project.Name, project.NetFile, lefthandFlag, project.ConfigFile,
	)
}
