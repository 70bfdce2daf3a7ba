// Package workflow generates GitHub Actions workflow documents for the
// supported tech stacks. Generation is a pure function of (framework,
// test-case path, callback URL).
package workflow

import (
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/forkrun/pkg/domain/model"
	"github.com/secmon-lab/forkrun/pkg/domain/types"
)

func Generate(framework model.Framework, testCasePath, callbackURL string) (string, error) {
	switch framework {
	case model.FrameworkSpringBootMaven:
		return fmt.Sprintf(springBootTemplate, testCasePath, callbackURL), nil
	case model.FrameworkNodeJSExpress:
		return fmt.Sprintf(nodeJSTemplate, testCasePath, callbackURL), nil
	case model.FrameworkPythonFlask:
		return fmt.Sprintf(pythonFlaskTemplate, testCasePath, callbackURL), nil
	default:
		return "", goerr.Wrap(types.ErrValidationFailed, "unsupported tech_stack",
			goerr.V("tech_stack", framework),
		)
	}
}

const springBootTemplate = `name: API Test

on:
  workflow_dispatch:

jobs:
  test:
    runs-on: ubuntu-latest

    steps:
      - name: Checkout code
        uses: actions/checkout@v4

      - name: Set up JDK
        uses: actions/setup-java@v4
        with:
          java-version: '17'
          distribution: 'temurin'
          cache: maven

      - name: Build application
        run: mvn clean package -DskipTests

      - name: Start application
        run: |
          java -jar target/*.jar &
          sleep 30
        env:
          SPRING_PROFILES_ACTIVE: test

      - name: Wait for application to be ready
        run: |
          timeout=60
          elapsed=0
          while ! curl -f http://localhost:8080/health 2>/dev/null; do
            if [ $elapsed -ge $timeout ]; then
              echo "Application failed to start"
              exit 1
            fi
            sleep 2
            elapsed=$((elapsed + 2))
          done

      - name: Run API tests
        id: test
        run: |
          node test-runner.js %[1]s %[2]s/repos/test-results

      - name: Stop application
        if: always()
        run: pkill -f "java -jar"
`

const nodeJSTemplate = `name: API Test

on:
  workflow_dispatch:

jobs:
  test:
    runs-on: ubuntu-latest

    steps:
      - name: Checkout code
        uses: actions/checkout@v4

      - name: Set up Node.js
        uses: actions/setup-node@v4
        with:
          node-version: '20'
          cache: 'npm'

      - name: Install dependencies
        run: npm install

      - name: Start application
        run: |
          npm start &
          sleep 10
        env:
          NODE_ENV: test
          PORT: 3000

      - name: Wait for application to be ready
        run: |
          timeout=60
          elapsed=0
          while ! curl -f http://localhost:3000/health 2>/dev/null; do
            if [ $elapsed -ge $timeout ]; then
              echo "Application failed to start"
              exit 1
            fi
            sleep 2
            elapsed=$((elapsed + 2))
          done

      - name: Run API tests
        id: test
        run: |
          node test-runner.js %[1]s %[2]s/repos/test-results

      - name: Stop application
        if: always()
        run: pkill -f "node"
`

const pythonFlaskTemplate = `name: API Test

on:
  workflow_dispatch:

jobs:
  test:
    runs-on: ubuntu-latest

    steps:
      - name: Checkout code
        uses: actions/checkout@v4

      - name: Set up Python
        uses: actions/setup-python@v5
        with:
          python-version: '3.11'
          cache: 'pip'

      - name: Install dependencies
        run: |
          pip install -r requirements.txt

      - name: Start application
        run: |
          python app.py &
          sleep 10
        env:
          FLASK_ENV: test
          FLASK_PORT: 5000

      - name: Wait for application to be ready
        run: |
          timeout=60
          elapsed=0
          while ! curl -f http://localhost:5000/health 2>/dev/null; do
            if [ $elapsed -ge $timeout ]; then
              echo "Application failed to start"
              exit 1
            fi
            sleep 2
            elapsed=$((elapsed + 2))
          done

      - name: Run API tests
        id: test
        run: |
          node test-runner.js %[1]s %[2]s/repos/test-results

      - name: Stop application
        if: always()
        run: pkill -f "python.*app.py"
`
